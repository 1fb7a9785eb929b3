// SPDX-License-Identifier: MIT
// Package config loads the YAML run file of the vqe-maxcut command.
//
// Every field is optional; missing fields keep the values of Default():
//
//	qubits: 4
//	layers: 1
//	shots: 1000
//	graph_seed: 10
//	edges: -1          # -1 draws the edge count from [2n, 3n)
//	angle_seed: 7      # omit for random initial angles
//	simulator_seed: 7  # omit for random shot sampling
//	max_iterations: 0  # 0 uses the minimizer default
//	max_evaluations: 0
//	log_level: info
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vqecut/builder"
	"github.com/katalvlaran/vqecut/vqe"
)

// ErrInvalid marks a field value the command cannot run with.
var ErrInvalid = errors.New("config: invalid value")

// DefaultGraphSeed seeds the random graph when no file overrides it.
const DefaultGraphSeed = 10

// File is the on-disk run configuration.
type File struct {
	Qubits         int     `yaml:"qubits"`
	Layers         int     `yaml:"layers"`
	Shots          int     `yaml:"shots"`
	GraphSeed      int64   `yaml:"graph_seed"`
	Edges          int     `yaml:"edges"`
	AngleSeed      *uint64 `yaml:"angle_seed,omitempty"`
	SimulatorSeed  *uint64 `yaml:"simulator_seed,omitempty"`
	MaxIterations  int     `yaml:"max_iterations"`
	MaxEvaluations int     `yaml:"max_evaluations"`
	LogLevel       string  `yaml:"log_level"`
}

// Default returns the built-in run: four qubits, one layer, 1000 shots on
// the seed-10 random graph.
func Default() *File {
	return &File{
		Qubits:    vqe.DefaultQubits,
		Layers:    vqe.DefaultLayers,
		Shots:     vqe.DefaultShots,
		GraphSeed: DefaultGraphSeed,
		Edges:     builder.DrawEdgeCount,
		LogLevel:  "info",
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns Default().
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}

	return f, nil
}

// Parse decodes YAML over Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Save writes f as YAML.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	return errors.Wrap(os.WriteFile(path, data, 0o644), "save config")
}

// Validate checks every field.
func (f *File) Validate() error {
	if err := f.VQE().Validate(); err != nil {
		return errors.Wrap(err, "validate")
	}
	if f.Edges < builder.DrawEdgeCount {
		return errors.Wrapf(ErrInvalid, "validate: edges=%d", f.Edges)
	}
	if f.MaxIterations < 0 || f.MaxEvaluations < 0 {
		return errors.Wrapf(ErrInvalid, "validate: max_iterations=%d max_evaluations=%d", f.MaxIterations, f.MaxEvaluations)
	}
	if _, err := f.Level(); err != nil {
		return err
	}

	return nil
}

// VQE returns the problem shape.
func (f *File) VQE() vqe.Config {
	return vqe.Config{Qubits: f.Qubits, Layers: f.Layers, Shots: f.Shots}
}

// Level parses LogLevel; an empty value means info.
func (f *File) Level() (zapcore.Level, error) {
	if f.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(f.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(ErrInvalid, "validate: log_level=%q", f.LogLevel)
	}

	return lvl, nil
}
