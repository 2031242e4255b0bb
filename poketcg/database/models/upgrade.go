package models

// Upgrade holds the purchasable perk levels attached to a player. Levels
// start at zero and only ever go up.
type Upgrade struct {
	DailyPackAmount    int64 `bson:"daily_pack_amount"`
	DailyTimeReset     int64 `bson:"daily_time_reset"`
	QuizQuestionAmount int64 `bson:"quiz_question_amount"`
	QuizTimeReset      int64 `bson:"quiz_time_reset"`
	SlotAmount         int64 `bson:"slot_amount"`
	SellMultiplier     int64 `bson:"sell_multiplier"`
}

// NewUpgrade is the deterministic starting state for a player with no
// purchased upgrades.
func NewUpgrade() Upgrade {
	return Upgrade{}
}
