// SPDX-License-Identifier: MIT
// Package vqe: sentinel error set.

package vqe

import "errors"

var (
	// ErrConfig indicates a Config with qubits < 1, layers < 0 or shots < 1.
	ErrConfig = errors.New("vqe: invalid configuration")

	// ErrAngleCount indicates an angle vector whose length is not (layers+1)·qubits.
	ErrAngleCount = errors.New("vqe: wrong number of angles")

	// ErrSizeMismatch indicates a weight matrix or counts width that disagrees
	// with the configured qubit count.
	ErrSizeMismatch = errors.New("vqe: size mismatch")

	// ErrShotMismatch indicates counts that do not sum to the configured shots.
	ErrShotMismatch = errors.New("vqe: counts do not sum to shots")

	// ErrNilSimulator indicates a nil simulator.Simulator.
	ErrNilSimulator = errors.New("vqe: simulator is nil")

	// ErrNilObjective indicates a nil ObjectiveFunc passed to a Minimizer.
	ErrNilObjective = errors.New("vqe: objective is nil")
)
