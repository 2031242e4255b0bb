package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player is the durable progress record for one Discord user. One document
// per discord_id; created lazily on first lookup, mutated only through
// partial updates keyed by ID.
type Player struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	DiscordID int64              `bson:"discord_id"`

	Cash      float64 `bson:"cash"`
	TotalCash float64 `bson:"total_cash"`

	Packs      map[string]int64 `bson:"packs"`
	Cards      map[string]int64 `bson:"cards"`
	TotalCards int64            `bson:"total_cards"`
	CardsSold  int64            `bson:"cards_sold"`

	DailyReset time.Time `bson:"daily_reset"`
	QuizReset  time.Time `bson:"quiz_reset"`

	PacksOpened       int64 `bson:"packs_opened"`
	PacksBought       int64 `bson:"packs_bought"`
	DailyPacks        int64 `bson:"daily_packs"`
	QuizQuestions     int64 `bson:"quiz_questions"`
	QuizCorrect       int64 `bson:"quiz_correct"`
	CurrentMultiplier int64 `bson:"current_multiplier"`
	PermMultiplier    int64 `bson:"perm_multiplier"`
	DailySlots        int64 `bson:"daily_slots"`
	SlotsRolled       int64 `bson:"slots_rolled"`
	Jackpots          int64 `bson:"jackpots"`
	Boofs             int64 `bson:"boofs"`
	Tokens            int64 `bson:"tokens"`
	TotalTokens       int64 `bson:"total_tokens"`

	Savelist         []string `bson:"savelist"`
	CompletedBinders []string `bson:"completed_binders"`

	Upgrades      Upgrade `bson:"upgrades"`
	CurrentBinder Binder  `bson:"current_binder"`

	LightMode bool `bson:"light_mode"`
}

// NewPlayer returns a fresh record for a discord_id never seen before.
func NewPlayer(discordID int64) *Player {
	now := time.Now().UTC()
	return &Player{
		DiscordID:         discordID,
		Cash:              25.0,
		TotalCash:         25.0,
		Packs:             map[string]int64{},
		Cards:             map[string]int64{},
		DailyReset:        now,
		QuizReset:         now,
		DailyPacks:        50,
		QuizQuestions:     5,
		CurrentMultiplier: 1,
		PermMultiplier:    50,
		DailySlots:        10,
		Savelist:          []string{},
		CompletedBinders:  []string{},
		Upgrades:          NewUpgrade(),
		CurrentBinder:     EmptyBinder(),
	}
}

// playerDefaults is the single place fields added after first deployment
// get their decode-time values. Documents written before a field existed
// decode with the listed default instead of failing. Fields whose default
// is the Go zero value need no entry.
var playerDefaults = []struct {
	key   string
	apply func(*Player)
}{
	{"packs", func(p *Player) { p.Packs = map[string]int64{} }},
	{"cards", func(p *Player) { p.Cards = map[string]int64{} }},
	{"savelist", func(p *Player) { p.Savelist = []string{} }},
	{"daily_slots", func(p *Player) { p.DailySlots = 10 }},
	{"upgrades", func(p *Player) { p.Upgrades = NewUpgrade() }},
	{"current_binder", func(p *Player) { p.CurrentBinder = EmptyBinder() }},
	{"completed_binders", func(p *Player) { p.CompletedBinders = []string{} }},
}

// UnmarshalBSON decodes the stored document and then fills every field
// absent from it with its declared default.
func (p *Player) UnmarshalBSON(data []byte) error {
	type plain Player
	var out plain
	if err := bson.Unmarshal(data, &out); err != nil {
		return err
	}

	raw := bson.Raw(data)
	decoded := Player(out)
	for _, def := range playerDefaults {
		if _, err := raw.LookupErr(def.key); err != nil {
			def.apply(&decoded)
		}
	}

	*p = decoded
	return nil
}

// Persisted reports whether the record has a store-assigned identity.
func (p *Player) Persisted() bool {
	return !p.ID.IsZero()
}

// TotalPacks sums the owned counts across every pack type.
func (p *Player) TotalPacks() int64 {
	var total int64
	for _, n := range p.Packs {
		total += n
	}
	return total
}
