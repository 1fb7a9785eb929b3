// SPDX-License-Identifier: MIT
package vqe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vqecut/vqe"
)

func TestDefaultConfig(t *testing.T) {
	cfg := vqe.DefaultConfig()
	assert.Equal(t, vqe.Config{Qubits: 4, Layers: 1, Shots: 1000}, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.ParamCount())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		cfg  vqe.Config
		ok   bool
	}{
		{"no qubits", vqe.Config{Qubits: 0, Layers: 1, Shots: 10}, false},
		{"negative layers", vqe.Config{Qubits: 2, Layers: -1, Shots: 10}, false},
		{"zero shots", vqe.Config{Qubits: 2, Layers: 1, Shots: 0}, false},
		{"zero layers", vqe.Config{Qubits: 3, Layers: 0, Shots: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, vqe.ErrConfig)
		})
	}
	assert.Equal(t, 3, vqe.Config{Qubits: 3, Layers: 0, Shots: 1}.ParamCount())
	assert.Equal(t, 9, vqe.Config{Qubits: 3, Layers: 2, Shots: 1}.ParamCount())
}
