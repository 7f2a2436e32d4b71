// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the query-export application runtime.
//
// It wires the merged configuration, the HTTP transport adapter, and the
// workflow service into a single one-shot process lifecycle.
package client
