// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned by [NewServer] when there is nothing to serve.
var errNoHTTPHandler = errors.New("no http handler to serve")
