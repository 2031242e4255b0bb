package commands

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"poketcg/poketcg"
	"poketcg/poketcg/embeds"
	"poketcg/poketcg/pagination"
)

const cardsPerPage = 10

var MyCards = discord.SlashCommandCreate{
	Name:        "mycards",
	Description: "🎴 Browse the cards you own",
}

func MyCardsHandler(b *poketcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
			return replyError(e, "Failed to fetch your cards. Please try again later.")
		}

		if len(player.Cards) == 0 {
			_, err := e.CreateFollowupMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Description: "You don't own any cards yet. Open a pack!",
					Color:       embeds.AccentColor,
				}},
			})
			return err
		}

		ids := make([]string, 0, len(player.Cards))
		for id := range player.Cards {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		listEntries := make([]embeds.CardListEntry, 0, len(ids))
		for _, id := range ids {
			name := id
			// Catalog lookups are cached; a miss just shows the raw id.
			if card, err := b.TCG.Card(ctx, id); err == nil && card.Name != "" {
				name = card.Name
			}
			listEntries = append(listEntries, embeds.CardListEntry{
				Name:  name,
				Count: player.Cards[id],
			})
		}

		totalPages := (len(listEntries) + cardsPerPage - 1) / cardsPerPage
		pages := make([]pagination.Paginatable, 0, totalPages)
		for i := 0; i < totalPages; i++ {
			end := min((i+1)*cardsPerPage, len(listEntries))
			pages = append(pages, embeds.CardListPage{
				Title:   "Your Cards",
				Entries: listEntries[i*cardsPerPage : end],
				Index:   i,
				Total:   totalPages,
			})
		}

		return paginate(b.Paginator, e, pages)
	}
}
