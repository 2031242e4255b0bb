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

// Nobody pages through more results than this.
const maxSearchResults = 50

var Search = discord.SlashCommandCreate{
	Name:        "search",
	Description: "🔍 Search the card catalog",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "query",
			Description: "Card name, or a structured query like set.id:base1",
			Required:    true,
		},
	},
}

func SearchHandler(b *poketcg.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		query := e.SlashCommandInteractionData().String("query")

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		cards, err := b.TCG.Search(ctx, query)
		if err != nil {
			slog.Error("Catalog search failed",
				slog.String("type", "sys"),
				slog.String("query", query),
				slog.Any("error", err),
			)
			return replyError(e, "The card catalog is not responding. Please try again later.")
		}

		if len(cards) == 0 {
			_, err := e.CreateFollowupMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Description: "No cards matched your search.",
					Color:       embeds.AccentColor,
				}},
			})
			return err
		}

		if len(cards) > maxSearchResults {
			cards = cards[:maxSearchResults]
		}

		pages := make([]pagination.Paginatable, 0, len(cards))
		for _, card := range cards {
			pages = append(pages, embeds.CardView{Card: card})
		}

		return paginate(b.Paginator, e, pages)
	}
}
