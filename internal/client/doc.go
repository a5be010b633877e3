// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the runtime of the interactive client. It builds one sync
// instance per platform and runs them alongside the terminal UI until exit.
package client
