package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"poketcg/poketcg"
	"poketcg/poketcg/database/repositories"
	"poketcg/poketcg/embeds"
)

var Savelist = discord.SlashCommandCreate{
	Name:        "savelist",
	Description: "📌 Manage the cards you never want sold",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "Add a card to your savelist",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "card",
					Description: "Card id, e.g. base1-4",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Remove a card from your savelist",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "card",
					Description: "Card id, e.g. base1-4",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "clear",
			Description: "Clear your savelist",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "show",
			Description: "Show your savelist",
		},
	},
}

func SavelistHandler(b *poketcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()

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
			return replyError(e, "Failed to load your savelist. Please try again later.")
		}

		var sub string
		if data.SubCommandName != nil {
			sub = *data.SubCommandName
		}

		switch sub {
		case "add":
			card := data.String("card")
			if slices.Contains(player.Savelist, card) {
				return reply(e, fmt.Sprintf("**%s** is already on your savelist.", card))
			}
			updated := append(slices.Clone(player.Savelist), card)
			if err := b.PlayerRepository.Update(ctx, player,
				repositories.NewUpdate().Set("savelist", updated)); err != nil {
				return replyError(e, "Failed to update your savelist. Please try again later.")
			}
			return reply(e, fmt.Sprintf("Added **%s** to your savelist.", card))

		case "remove":
			card := data.String("card")
			idx := slices.Index(player.Savelist, card)
			if idx < 0 {
				return reply(e, fmt.Sprintf("**%s** is not on your savelist.", card))
			}
			updated := slices.Delete(slices.Clone(player.Savelist), idx, idx+1)
			if err := b.PlayerRepository.Update(ctx, player,
				repositories.NewUpdate().Set("savelist", updated)); err != nil {
				return replyError(e, "Failed to update your savelist. Please try again later.")
			}
			return reply(e, fmt.Sprintf("Removed **%s** from your savelist.", card))

		case "clear":
			if err := b.PlayerRepository.Update(ctx, player,
				repositories.NewUpdate().Set("savelist", []string{})); err != nil {
				return replyError(e, "Failed to update your savelist. Please try again later.")
			}
			return reply(e, "Savelist cleared.")

		default:
			if len(player.Savelist) == 0 {
				return reply(e, "Your savelist is empty.")
			}
			return reply(e, "**Savelist:**\n"+strings.Join(player.Savelist, "\n"))
		}
	}
}

func reply(e *handler.CommandEvent, description string) error {
	_, err := e.CreateFollowupMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: description,
			Color:       embeds.AccentColor,
		}},
	})
	return err
}
