package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	report := Report{
		MapName:  "Summoner's Rift",
		GameMode: "CLASSIC",
		Team1:    []PlayerRow{{"alpha", "Ahri", "GOLD II", UNRANKED}},
		Team2:    []PlayerRow{{"beta", "Jinx", UNRANKED, "SILVER I"}},
	}

	expected := "**Summoner's Rift**\n" +
		"*CLASSIC*\n" +
		"```\n" +
		"Name             Champion     Solo           Flex           | Name             Champion     Solo           Flex          \n" +
		strings.Repeat("-", 120) + "\n" +
		"alpha            Ahri         GOLD II        Unranked       | beta             Jinx         Unranked       SILVER I      \n" +
		"```"
	assert.Equal(t, expected, Format(report))
}

func TestFormatUnbalancedTeams(t *testing.T) {
	report := Report{
		MapName:  "Howling Abyss",
		GameMode: "ARAM",
		Team1:    []PlayerRow{{"alpha", "Ahri", "GOLD II", UNRANKED}, {"gamma", "Lux", UNRANKED, UNRANKED}},
		Team2:    []PlayerRow{{"beta", "Jinx", UNRANKED, "SILVER I"}},
	}

	table := Format(report)
	assert.Contains(t, table, "gamma")
	rows := strings.Split(table, "\n")
	// map, mode, code block, title, separator, then the two rows
	assert.Equal(t, formatRow(report.Team1[1])+" | "+formatRow(PlayerRow{}), rows[6])
}

func TestFormatRowDoesNotTruncate(t *testing.T) {
	row := formatRow(PlayerRow{"a very long summoner name", "Heimerdinger", "CHALLENGER I", UNRANKED})
	assert.True(t, strings.HasPrefix(row, "a very long summoner name Heimerdinger CHALLENGER I"))
}
