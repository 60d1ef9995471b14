package tournament

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// minPlayerNameWidth keeps the name column readable for short names
const minPlayerNameWidth = 12

// ConsoleReporter renders published rounds as a plain text table
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// ReportRound prints the round's standings table
func (r *ConsoleReporter) ReportRound(ctx context.Context, rr *entities.RoundResults) error {
	_, err := io.WriteString(r.out, FormatRoundTable(rr))
	return err
}

// FormatRoundTable renders one round's standings, best rating first
func FormatRoundTable(rr *entities.RoundResults) string {
	nameWidth := minPlayerNameWidth
	for _, ps := range rr.PlayerStatistics {
		if len(ps.PlayerName) > nameWidth {
			nameWidth = len(ps.PlayerName)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== Round %d results ===\n", rr.Round)
	fmt.Fprintf(&b, "%-4s %-*s %6s %6s %8s %8s %8s\n",
		"#", nameWidth, "Player", "W", "L", "PF", "PA", "Rating")
	for i, ps := range rr.PlayerStatistics {
		fmt.Fprintf(&b, "%-4d %-*s %6d %6d %8d %8d %8.1f\n",
			i+1, nameWidth, ps.PlayerName, ps.Wins, ps.Losses, ps.PointsFor, ps.PointsAgainst, ps.Rating)
	}
	return b.String()
}
