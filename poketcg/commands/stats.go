package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"poketcg/poketcg"
	"poketcg/poketcg/embeds"
	"poketcg/poketcg/pagination"
)

var Stats = discord.SlashCommandCreate{
	Name:        "stats",
	Description: "📊 View your collection and economy stats",
}

func StatsHandler(b *poketcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		player, err := b.PlayerRepository.GetOrCreate(ctx, int64(e.User().ID))
		if err != nil {
			slog.Error("Failed to get player",
				slog.String("type", "db"),
				slog.String("discord_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return replyError(e, "Failed to fetch your stats. Please try again later.")
		}

		return paginate(b.Paginator, e, []pagination.Paginatable{
			embeds.PlayerStats{Player: player},
		})
	}
}
