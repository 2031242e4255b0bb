package pagination

import "github.com/disgoorg/disgo/discord"

// Page is one renderable unit of a browsable collection.
type Page struct {
	Title       string
	Description string
	Color       int
	Image       string
}

// Paginatable is the capability of producing one page of content.
// Page must be pure; computing it has no side effect on the entity.
type Paginatable interface {
	Page() Page
}

// Embed maps a page onto a Discord embed.
func Embed(p Page) discord.Embed {
	embed := discord.Embed{
		Title:       p.Title,
		Description: p.Description,
		Color:       p.Color,
	}
	if p.Image != "" {
		embed.Image = &discord.EmbedResource{URL: p.Image}
	}
	return embed
}
