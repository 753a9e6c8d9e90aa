// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the terminal application started by cmd/client.
type Client interface {
	// Run blocks until the user quits or a stop signal arrives.
	Run() error
}

var _ Client = (*App)(nil)
