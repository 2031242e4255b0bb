package pagination

import (
	"log/slog"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// messageSurface renders pages by editing one Discord message.
type messageSurface struct {
	client    bot.Client
	channelID snowflake.ID
	messageID snowflake.ID
}

func (s *messageSurface) Render(page Page) error {
	_, err := s.client.Rest().UpdateMessage(s.channelID, s.messageID, discord.MessageUpdate{
		Embeds: &[]discord.Embed{Embed(page)},
	})
	return err
}

func (s *messageSurface) Close() {
	if err := s.client.Rest().RemoveAllReactions(s.channelID, s.messageID); err != nil {
		slog.Debug("Failed to clear navigation reactions",
			slog.String("type", "sys"),
			slog.String("message_id", s.messageID.String()),
			slog.Any("error", err))
	}
}
