package ui

import (
	"fmt"
	"strings"

	"chameleon/internal/core"
)

// StatusLine formats the overlay header.
func StatusLine(name string, fps, tps float64, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  %s  fps %.0f  tps %.0f", name, state, fps, tps)
}

// ParameterLines formats a snapshot as a group heading followed by one
// indented label/value line per parameter.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		lines = append(lines, strings.ToUpper(g.Name))
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
