package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// Reporter posts each published round's standings to a Discord channel
type Reporter struct {
	session   SessionHandler
	channelID string
}

// NewReporter creates a reporter posting to the given channel
func NewReporter(session SessionHandler, channelID string) *Reporter {
	return &Reporter{
		session:   session,
		channelID: channelID,
	}
}

// ReportRound sends the round's standings as one message
func (r *Reporter) ReportRound(ctx context.Context, rr *entities.RoundResults) error {
	if _, err := r.session.ChannelMessageSend(r.channelID, formatRoundMessage(rr)); err != nil {
		return fmt.Errorf("failed to post round %d results: %w", rr.Round, err)
	}
	return nil
}

// formatRoundMessage renders the standings in a monospace code block so the
// columns line up in the Discord client
func formatRoundMessage(rr *entities.RoundResults) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 **Round %d results**\n```\n", rr.Round)
	fmt.Fprintf(&b, "%-4s %-16s %4s %4s %6s %6s %8s\n", "#", "Player", "W", "L", "PF", "PA", "Rating")
	for i, ps := range rr.PlayerStatistics {
		fmt.Fprintf(&b, "%-4d %-16s %4d %4d %6d %6d %8.1f\n",
			i+1, ps.PlayerName, ps.Wins, ps.Losses, ps.PointsFor, ps.PointsAgainst, ps.Rating)
	}
	b.WriteString("```")
	return b.String()
}
