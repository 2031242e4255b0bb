package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"poketcg/poketcg"
	"poketcg/poketcg/database/repositories"
	"poketcg/poketcg/embeds"
)

const (
	dailyPackRefill = 50
	dailySlotRefill = 10
	dailyCashBonus  = 25.0
)

var Daily = discord.SlashCommandCreate{
	Name:        "daily",
	Description: "🎁 Claim your daily packs, slots and cash",
}

func DailyHandler(b *poketcg.Bot) handler.CommandHandler {
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
			return replyError(e, "Failed to claim your daily. Please try again later.")
		}

		now := time.Now().UTC()
		if now.Before(player.DailyReset) {
			remaining := time.Until(player.DailyReset).Round(time.Minute)
			_, err := e.CreateFollowupMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Description: fmt.Sprintf("Already claimed. Your daily resets in **%s**.", remaining),
					Color:       embeds.AccentColor,
				}},
			})
			return err
		}

		update := repositories.NewUpdate().
			Set("daily_packs", int64(dailyPackRefill)).
			Set("daily_slots", int64(dailySlotRefill)).
			Set("daily_reset", now.Add(24*time.Hour)).
			Inc("cash", dailyCashBonus).
			Inc("total_cash", dailyCashBonus)

		if err := b.PlayerRepository.Update(ctx, player, update); err != nil {
			slog.Error("Failed to apply daily update",
				slog.String("type", "db"),
				slog.String("discord_id", e.User().ID.String()),
				slog.Any("error", err),
			)
			return replyError(e, "Failed to claim your daily. Please try again later.")
		}

		_, err = e.CreateFollowupMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "Daily claimed!",
				Description: fmt.Sprintf(
					"You received **%d packs**, **%d slot rolls** and **$%.2f**.",
					dailyPackRefill, dailySlotRefill, dailyCashBonus),
				Color: embeds.AccentColor,
			}},
		})
		return err
	}
}
