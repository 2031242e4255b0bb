package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"poketcg/poketcg/database/models"
	"poketcg/poketcg/logger"
)

type PlayerRepository interface {
	// GetAll returns every stored player. Administrative scans only.
	GetAll(ctx context.Context) ([]*models.Player, error)
	// Find looks up exactly one player by discord_id. A miss is
	// ErrPlayerNotFound, never a creation.
	Find(ctx context.Context, discordID int64) (*models.Player, error)
	// GetOrCreate resolves the player for discordID, inserting a fresh
	// record on a miss. The insert must succeed before the player is
	// returned; a duplicate-key race retries the lookup once.
	GetOrCreate(ctx context.Context, discordID int64) (*models.Player, error)
	// Update applies a partial update atomically to the single document
	// with player's store identity. It does not re-read the record.
	Update(ctx context.Context, player *models.Player, update *Update) error
}

type playerRepository struct {
	coll *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) PlayerRepository {
	return &playerRepository{coll: db.Collection("players")}
}

func (r *playerRepository) GetAll(ctx context.Context) (players []*models.Player, err error) {
	start := time.Now()
	defer func() { logger.LogStore("GetAll", time.Since(start), err) }()

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: find all players: %v", ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		player := new(models.Player)
		if err := cur.Decode(player); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		players = append(players, player)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: find all players: %v", ErrStoreUnavailable, err)
	}
	return players, nil
}

func (r *playerRepository) Find(ctx context.Context, discordID int64) (player *models.Player, err error) {
	start := time.Now()
	defer func() {
		logger.LogStore("Find", time.Since(start), err, slog.Int64("discord_id", discordID))
	}()

	// Fetch up to two matches so a uniqueness violation surfaces instead of
	// silently picking one.
	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "discord_id", Value: discordID}},
		options.Find().SetLimit(2))
	if err != nil {
		return nil, fmt.Errorf("%w: find player %d: %v", ErrStoreUnavailable, discordID, err)
	}
	defer cur.Close(ctx)

	var matches []*models.Player
	for cur.Next(ctx) {
		match := new(models.Player)
		if err := cur.Decode(match); err != nil {
			return nil, fmt.Errorf("%w: player %d: %v", ErrDecode, discordID, err)
		}
		matches = append(matches, match)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: find player %d: %v", ErrStoreUnavailable, discordID, err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrPlayerNotFound
	case 1:
		return matches[0], nil
	default:
		slog.Error("Multiple player records for one discord_id",
			slog.String("type", "db"),
			slog.String("operation", "Find"),
			slog.Int64("discord_id", discordID))
		return nil, fmt.Errorf("%w: discord_id %d", ErrDataCorruption, discordID)
	}
}

func (r *playerRepository) GetOrCreate(ctx context.Context, discordID int64) (player *models.Player, err error) {
	start := time.Now()
	defer func() {
		logger.LogStore("GetOrCreate", time.Since(start), err, slog.Int64("discord_id", discordID))
	}()

	player, err = r.Find(ctx, discordID)
	if err == nil || !errors.Is(err, ErrPlayerNotFound) {
		return player, err
	}

	fresh := models.NewPlayer(discordID)
	res, err := r.coll.InsertOne(ctx, fresh)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the creation race against a concurrent command for the
			// same user; the unique index guarantees their record exists.
			return r.Find(ctx, discordID)
		}
		return nil, fmt.Errorf("%w: create player %d: %v", ErrStoreUnavailable, discordID, err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		fresh.ID = id
	}

	slog.Info("Created new player",
		slog.String("type", "db"),
		slog.String("operation", "GetOrCreate"),
		slog.Int64("discord_id", discordID))

	return fresh, nil
}

func (r *playerRepository) Update(ctx context.Context, player *models.Player, update *Update) (err error) {
	start := time.Now()
	defer func() {
		logger.LogStore("Update", time.Since(start), err, slog.Int64("discord_id", player.DiscordID))
	}()

	if !player.Persisted() {
		return fmt.Errorf("%w: discord_id %d", ErrNotPersisted, player.DiscordID)
	}
	if update == nil || update.Empty() {
		return nil
	}

	res, err := r.coll.UpdateByID(ctx, player.ID, update.Document())
	if err != nil {
		return fmt.Errorf("%w: update player %d: %v", ErrStoreUnavailable, player.DiscordID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: id %s", ErrPlayerNotFound, player.ID.Hex())
	}
	return nil
}
