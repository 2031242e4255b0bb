package models

// Binder is an in-progress collection goal: one card set being filled.
type Binder struct {
	SetID string   `bson:"set_id"`
	Cards []string `bson:"cards"`
}

// EmptyBinder is the sentinel used when a player has no binder in
// progress. Stored documents missing the field decode to this.
func EmptyBinder() Binder {
	return Binder{Cards: []string{}}
}
