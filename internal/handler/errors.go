// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errStaticDirUnavailable is returned by NewHandlers when the configured
// static directory is missing or is not a directory. The server refuses to
// start in that case instead of answering 404 for every page.
var errStaticDirUnavailable = errors.New("static directory is unavailable")
