// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the sync client and the development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later ones only fill fields left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (comments and trailing commas are allowed)
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the client and
// [GetDevServerConfig] for the development server.
package config
