package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/redis/go-redis/v9"
)

type dbRecord struct {
	client *redis.Client
	key    string
}

// NewRedisRecordRepository pushes JSON records onto the tail of the list at key.
func NewRedisRecordRepository(client *redis.Client, key string) RecordRepository {
	return &dbRecord{
		client: client,
		key:    key,
	}
}

func (that *dbRecord) Append(ctx context.Context, record *entity.Record) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	if err = that.client.RPush(ctx, that.key, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to push record: %w", err)
	}

	return nil
}
