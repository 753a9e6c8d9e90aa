// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/note-pilot/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	var b strings.Builder

	b.WriteString("Note Pilot\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))
	b.WriteString("\n\nesc close")

	return overlayBoxStyle.Render(b.String())
}
