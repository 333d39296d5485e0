package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// keepPerRoom caps the archive list per room.
const keepPerRoom = 50

// GameResult is one concluded game as stored in the archive. Room sessions
// themselves are never persisted; this is telemetry about finished games.
type GameResult struct {
	RoomID     string                   `json:"room_id"`
	Winner     string                   `json:"winner,omitempty"`
	Board      [entity.BoardSize]string `json:"board"`
	FinishedAt time.Time                `json:"finished_at"`
}

type ArchiveRepository interface {
	RecordResult(ctx context.Context, roomID, winner string, board [entity.BoardSize]string) error
	RecentResults(ctx context.Context, roomID string, limit int64) ([]*GameResult, error)
}

type dbArchive struct {
	client *redis.Client
}

func NewArchiveRepository(client *redis.Client) ArchiveRepository {
	return &dbArchive{
		client: client,
	}
}

// RecordResult - prepends the result to the room's archive list and trims
// the list to the retention cap.
func (that *dbArchive) RecordResult(ctx context.Context, roomID, winner string, board [entity.BoardSize]string) error {
	result := GameResult{
		RoomID:     roomID,
		Winner:     winner,
		Board:      board,
		FinishedAt: time.Now().UTC(),
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal game result: %w", err)
	}

	resultsKey := archiveKey(roomID)

	if err = that.client.LPush(ctx, resultsKey, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to push game result: %w", err)
	}

	if err = that.client.LTrim(ctx, resultsKey, 0, keepPerRoom-1).Err(); err != nil {
		return fmt.Errorf("failed to trim game results: %w", err)
	}

	return nil
}

// RecentResults - returns up to limit results for the room, newest first.
func (that *dbArchive) RecentResults(ctx context.Context, roomID string, limit int64) ([]*GameResult, error) {
	entries, err := that.client.LRange(ctx, archiveKey(roomID), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read game results: %w", err)
	}

	results := make([]*GameResult, 0, len(entries))
	for _, entry := range entries {
		var result GameResult
		if err = json.Unmarshal([]byte(entry), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

func archiveKey(roomID string) string {
	return "room:results:" + roomID
}
