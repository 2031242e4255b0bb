package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"poketcg/poketcg/database/models"
)

const playersNS = "poketcg.players"

func playerDoc(id primitive.ObjectID, discordID int64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "discord_id", Value: discordID},
		{Key: "cash", Value: 25.0},
		{Key: "total_cash", Value: 25.0},
		{Key: "daily_packs", Value: int64(50)},
		{Key: "packs", Value: bson.D{}},
	}
}

func TestFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch, playerDoc(oid, 42)))

		repo := NewPlayerRepository(mt.DB)
		player, err := repo.Find(context.Background(), 42)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, oid, player.ID)
		assert.EqualValues(mt.T, 42, player.DiscordID)
		assert.Equal(mt.T, 25.0, player.Cash)
	})

	mt.Run("miss is explicit", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch))

		repo := NewPlayerRepository(mt.DB)
		_, err := repo.Find(context.Background(), 42)
		assert.ErrorIs(mt.T, err, ErrPlayerNotFound)
	})

	mt.Run("duplicate records surface as corruption", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch,
			playerDoc(primitive.NewObjectID(), 42),
			playerDoc(primitive.NewObjectID(), 42)))

		repo := NewPlayerRepository(mt.DB)
		_, err := repo.Find(context.Background(), 42)
		assert.ErrorIs(mt.T, err, ErrDataCorruption)
	})
}

func TestGetOrCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing record is returned untouched", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch, playerDoc(oid, 42)))

		repo := NewPlayerRepository(mt.DB)
		player, err := repo.GetOrCreate(context.Background(), 42)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, oid, player.ID)
	})

	mt.Run("miss creates a fresh player with starting values", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		repo := NewPlayerRepository(mt.DB)
		player, err := repo.GetOrCreate(context.Background(), 42)
		require.NoError(mt.T, err)

		assert.True(mt.T, player.Persisted(), "creation must assign a store identity")
		assert.EqualValues(mt.T, 42, player.DiscordID)
		assert.Equal(mt.T, 25.0, player.Cash)
		assert.Equal(mt.T, 25.0, player.TotalCash)
		assert.EqualValues(mt.T, 50, player.DailyPacks)
		assert.Empty(mt.T, player.Packs)
	})

	mt.Run("consecutive calls resolve one store identity", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		repo := NewPlayerRepository(mt.DB)
		first, err := repo.GetOrCreate(context.Background(), 42)
		require.NoError(mt.T, err)
		require.True(mt.T, first.Persisted())

		// The second call must find the record the first call inserted,
		// not mint another one.
		raw, err := bson.Marshal(first)
		require.NoError(mt.T, err)
		var stored bson.D
		require.NoError(mt.T, bson.Unmarshal(raw, &stored))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch, stored))

		second, err := repo.GetOrCreate(context.Background(), 42)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, first.ID, second.ID)
		assert.EqualValues(mt.T, 42, second.DiscordID)
	})

	mt.Run("creation race retries the lookup once", func(mt *mtest.T) {
		winner := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
			mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch, playerDoc(winner, 42)),
		)

		repo := NewPlayerRepository(mt.DB)
		player, err := repo.GetOrCreate(context.Background(), 42)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, winner, player.ID, "loser of the race must adopt the winner's record")
	})

	mt.Run("failed insert never returns a non-persisted player", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11601,
				Message: "operation was interrupted",
			}),
		)

		repo := NewPlayerRepository(mt.DB)
		player, err := repo.GetOrCreate(context.Background(), 42)
		assert.ErrorIs(mt.T, err, ErrStoreUnavailable)
		assert.Nil(mt.T, player)
	})
}

func TestUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("set and inc apply once", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		repo := NewPlayerRepository(mt.DB)
		player := models.NewPlayer(42)
		player.ID = primitive.NewObjectID()

		update := NewUpdate().
			Set("daily_packs", int64(50)).
			Inc("cash", 10.0)

		require.NoError(mt.T, repo.Update(context.Background(), player, update))

		// The update document must target the record by its store identity
		// and carry exactly the requested operations.
		started := mt.GetStartedEvent()
		require.NotNil(mt.T, started)
		assert.Equal(mt.T, "update", started.CommandName)

		updates := started.Command.Lookup("updates").Array()
		elems, err := updates.Elements()
		require.NoError(mt.T, err)
		require.Len(mt.T, elems, 1)

		first := elems[0].Value().Document()
		assert.Equal(mt.T, player.ID, first.Lookup("q", "_id").ObjectID())
		assert.Equal(mt.T, 50.0, float64(first.Lookup("u", "$set", "daily_packs").Int64()))
		assert.Equal(mt.T, 10.0, first.Lookup("u", "$inc", "cash").Double())
	})

	mt.Run("never persisted is a caller bug", func(mt *mtest.T) {
		repo := NewPlayerRepository(mt.DB)
		player := models.NewPlayer(42)

		err := repo.Update(context.Background(), player, NewUpdate().Inc("cash", 1.0))
		assert.ErrorIs(mt.T, err, ErrNotPersisted)
	})

	mt.Run("empty update is a no-op", func(mt *mtest.T) {
		repo := NewPlayerRepository(mt.DB)
		player := models.NewPlayer(42)
		player.ID = primitive.NewObjectID()

		require.NoError(mt.T, repo.Update(context.Background(), player, NewUpdate()))
	})
}

func TestGetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every record", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, playersNS, mtest.FirstBatch,
			playerDoc(primitive.NewObjectID(), 1),
			playerDoc(primitive.NewObjectID(), 2)))

		repo := NewPlayerRepository(mt.DB)
		players, err := repo.GetAll(context.Background())
		require.NoError(mt.T, err)
		require.Len(mt.T, players, 2)
		assert.EqualValues(mt.T, 1, players[0].DiscordID)
		assert.EqualValues(mt.T, 2, players[1].DiscordID)
	})
}
