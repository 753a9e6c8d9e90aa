// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It probes the companion server, then hands control to the terminal UI
// until the user quits or the process receives a stop signal.
package client
