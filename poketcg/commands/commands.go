package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"poketcg/poketcg/pagination"
)

var Commands = []discord.ApplicationCommandCreate{
	Stats,
	MyCards,
	Search,
	Daily,
	Savelist,
}

// paginate sends the first page as a followup and opens a reaction-driven
// session over the full sequence, restricted to the invoking user.
func paginate(mgr *pagination.Manager, e *handler.CommandEvent, entries []pagination.Paginatable) error {
	msg, err := e.CreateFollowupMessage(discord.MessageCreate{
		Embeds: []discord.Embed{pagination.Embed(entries[0].Page())},
	})
	if err != nil {
		return err
	}
	return mgr.Open(e.Client(), msg.ChannelID, msg.ID, e.User().ID, entries)
}

func replyError(e *handler.CommandEvent, description string) error {
	_, err := e.CreateFollowupMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Error",
			Description: description,
			Color:       0xED4245,
		}},
	})
	return err
}
