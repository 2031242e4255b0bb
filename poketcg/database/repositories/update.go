package repositories

import "go.mongodb.org/mongo-driver/bson"

// Update is a partial-update document. The only two operations callers may
// express are "set field to value" and "increment field by delta"; the
// schema is additive-only so nothing ever needs unsetting. The whole
// document is applied atomically to a single record.
type Update struct {
	set bson.D
	inc bson.D
}

func NewUpdate() *Update {
	return &Update{}
}

// Set overwrites field with value. Last Set wins across overlapping
// writers.
func (u *Update) Set(field string, value any) *Update {
	u.set = append(u.set, bson.E{Key: field, Value: value})
	return u
}

// Inc adds delta to field. Increments from overlapping writers accumulate.
func (u *Update) Inc(field string, delta any) *Update {
	u.inc = append(u.inc, bson.E{Key: field, Value: delta})
	return u
}

func (u *Update) Empty() bool {
	return len(u.set) == 0 && len(u.inc) == 0
}

// Document renders the builder as a store update document.
func (u *Update) Document() bson.D {
	doc := bson.D{}
	if len(u.set) > 0 {
		doc = append(doc, bson.E{Key: "$set", Value: u.set})
	}
	if len(u.inc) > 0 {
		doc = append(doc, bson.E{Key: "$inc", Value: u.inc})
	}
	return doc
}
