package discord

import (
	"github.com/bwmarrin/discordgo"
)

// SessionHandler is the slice of Discord session operations the reporter
// needs. Posting standings only uses the REST API, so no gateway
// connection is ever opened.
type SessionHandler interface {
	ChannelMessageSend(channelID string, content string) (*discordgo.Message, error)
}

// DiscordSession implements SessionHandler using discordgo.Session
type DiscordSession struct {
	*discordgo.Session
}

// NewSession creates a new DiscordSession
func NewSession(token string) (*DiscordSession, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	return &DiscordSession{Session: s}, nil
}

// Ensure DiscordSession implements SessionHandler
var _ SessionHandler = (*DiscordSession)(nil)

// ChannelMessageSend implements SessionHandler
func (s *DiscordSession) ChannelMessageSend(channelID string, content string) (*discordgo.Message, error) {
	return s.Session.ChannelMessageSend(channelID, content)
}
