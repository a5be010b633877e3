// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StorageStatus is the answer of the remote storage status probe.
type StorageStatus struct {
	IsInitializing      bool   `json:"is_initializing"`
	IsDatabaseAvailable bool   `json:"is_database_available"`
	IsAvailable         bool   `json:"is_available,omitempty"`
	StorageType         string `json:"storage_type,omitempty"`
}

// StorageState is the tri-state availability of the remote backing store.
type StorageState int

const (
	StorageUnavailable StorageState = iota
	StorageInitializing
	StorageAvailable
)

func (s StorageState) String() string {
	switch s {
	case StorageInitializing:
		return "initializing"
	case StorageAvailable:
		return "available"
	default:
		return "unavailable"
	}
}

// StateFromStatus derives a [StorageState] from a probe answer.
func StateFromStatus(status StorageStatus) StorageState {
	switch {
	case status.IsInitializing:
		return StorageInitializing
	case status.IsDatabaseAvailable:
		return StorageAvailable
	default:
		return StorageUnavailable
	}
}
