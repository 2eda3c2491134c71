package report

import (
	"fmt"
	"strings"
)

const rowFormat = "%-16s %-12s %-14s %-14s"
const separatorWidth = 120

func formatRow(row PlayerRow) string {
	return fmt.Sprintf(rowFormat, row.Name, row.Champion, row.Solo, row.Flex)
}

// Render the report: map and game mode on top, then both teams side by side
// inside a code block. A team with fewer players gets blank cells
func Format(report Report) string {

	var b strings.Builder

	fmt.Fprintf(&b, "**%s**\n", report.MapName)
	fmt.Fprintf(&b, "*%s*\n", report.GameMode)
	b.WriteString("```\n")

	title := formatRow(PlayerRow{"Name", "Champion", "Solo", "Flex"})
	b.WriteString(title + " | " + title + "\n")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	rows := max(len(report.Team1), len(report.Team2))
	for i := 0; i < rows; i++ {
		var left, right PlayerRow
		if i < len(report.Team1) {
			left = report.Team1[i]
		}
		if i < len(report.Team2) {
			right = report.Team2[i]
		}
		b.WriteString(formatRow(left) + " | " + formatRow(right) + "\n")
	}

	b.WriteString("```")
	return b.String()
}
