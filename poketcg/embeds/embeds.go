// Package embeds adapts domain entities into renderable pages.
package embeds

import (
	"fmt"
	"strings"

	"poketcg/poketcg/database/models"
	"poketcg/poketcg/pagination"
	"poketcg/poketcg/tcgapi"
)

// AccentColor is the bot's embed accent, RGB(255, 50, 20).
const AccentColor = 0xFF3214

// resetStampLayout renders reset timestamps as month/day hour:minute.
const resetStampLayout = "01/02 15:04"

// PlayerStats renders a player's progress record as a single stats page.
type PlayerStats struct {
	Player *models.Player
}

func (s PlayerStats) Page() pagination.Page {
	p := s.Player
	var desc strings.Builder

	fmt.Fprintf(&desc, "**Wallet:** $%.2f | **Total Earned:** $%.2f\n\n", p.Cash, p.TotalCash)
	fmt.Fprintf(&desc, "**Current Packs:** %d\n", p.TotalPacks())
	fmt.Fprintf(&desc, "**Opened Packs:** %d | **Bought Packs:** %d\n\n", p.PacksOpened, p.PacksBought)
	fmt.Fprintf(&desc, "**Total Cards:** %d | **Cards Sold:** %d\n\n", p.TotalCards, p.CardsSold)
	fmt.Fprintf(&desc, "**Slot Rolls:** %d | **Slots Rolled:** %d\n", p.DailySlots, p.SlotsRolled)
	fmt.Fprintf(&desc, "**Tokens:** %d | **Total Tokens:** %d\n", p.Tokens, p.TotalTokens)
	fmt.Fprintf(&desc, "**Jackpots:** %d | **Boofs:** %d\n\n", p.Jackpots, p.Boofs)
	fmt.Fprintf(&desc, "**Quiz Questions Remaining:** %d\n", p.QuizQuestions)
	fmt.Fprintf(&desc, "**Quiz Questions Answered:** %d\n\n", p.QuizCorrect)
	fmt.Fprintf(&desc, "Quiz resets at **%s**\n", p.QuizReset.Local().Format(resetStampLayout))
	fmt.Fprintf(&desc, "Daily reset at **%s**", p.DailyReset.Local().Format(resetStampLayout))

	return pagination.Page{
		Title:       "Stats",
		Description: desc.String(),
		Color:       AccentColor,
	}
}

// CardView renders one catalog card with its image.
type CardView struct {
	Card tcgapi.Card
}

func (v CardView) Page() pagination.Page {
	return pagination.Page{
		Title:       v.Card.Name,
		Description: fmt.Sprintf("**ID:** %s\n**Price:** $%.2f\n", v.Card.ID, v.Card.Price()),
		Color:       AccentColor,
		Image:       v.Card.Image(),
	}
}

// CardListPage renders one page of an owned-card listing.
type CardListPage struct {
	Title   string
	Entries []CardListEntry
	Index   int
	Total   int
}

type CardListEntry struct {
	Name  string
	Count int64
}

func (l CardListPage) Page() pagination.Page {
	var desc strings.Builder
	for _, entry := range l.Entries {
		fmt.Fprintf(&desc, "**%s** x%d\n", entry.Name, entry.Count)
	}
	return pagination.Page{
		Title:       fmt.Sprintf("%s (%d/%d)", l.Title, l.Index+1, l.Total),
		Description: desc.String(),
		Color:       AccentColor,
	}
}
