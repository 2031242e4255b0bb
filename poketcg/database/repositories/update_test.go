package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateDocument(t *testing.T) {
	tests := []struct {
		name   string
		update *Update
		want   bson.D
	}{
		{
			name:   "set only",
			update: NewUpdate().Set("cash", 35.0),
			want: bson.D{
				{Key: "$set", Value: bson.D{{Key: "cash", Value: 35.0}}},
			},
		},
		{
			name:   "inc only",
			update: NewUpdate().Inc("tokens", int64(1)),
			want: bson.D{
				{Key: "$inc", Value: bson.D{{Key: "tokens", Value: int64(1)}}},
			},
		},
		{
			name: "set and inc combined",
			update: NewUpdate().
				Set("daily_packs", int64(50)).
				Set("light_mode", true).
				Inc("cash", 10.0),
			want: bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "daily_packs", Value: int64(50)},
					{Key: "light_mode", Value: true},
				}},
				{Key: "$inc", Value: bson.D{{Key: "cash", Value: 10.0}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.update.Document())
			assert.False(t, tt.update.Empty())
		})
	}
}

func TestUpdateEmpty(t *testing.T) {
	assert.True(t, NewUpdate().Empty())
	assert.Equal(t, bson.D{}, NewUpdate().Document())
}
