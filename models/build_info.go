// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// BuildInfo identifies a Note Pilot binary. Values come from -ldflags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns a [BuildInfo] with blank values replaced by [NotAvailable].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines renders the info the way both binaries print it on start-up.
func (b BuildInfo) Lines() []string {
	return []string{
		"Build version: " + b.Version,
		"Build date: " + b.Date,
		"Build commit: " + b.Commit,
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("note-pilot %s (%s, %s)", b.Version, b.Commit, b.Date)
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return NotAvailable
	}
	return v
}
