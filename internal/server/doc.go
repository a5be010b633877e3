// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the development server's HTTP listener until a
// termination signal arrives, then shuts it down gracefully.
package server
