// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes a [devserver.Remote] over the JSON/HTTP protocol the
// sync client speaks: the storage status probe, the per-platform sync
// endpoint and the settings documents. Tracing, access logging, compression
// and optional bearer-token checks are handled here before requests reach
// the remote.
package http
