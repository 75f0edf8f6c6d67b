package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
)

const defaultPrefix = "lev:verification"

const (
	fieldStatus           = "status"
	fieldPayload          = "payload"
	fieldGeneration       = "generation"
	fieldLastTransitionAt = "last_transition_at"
	fieldCreatedAt        = "created_at"
	fieldUpdatedAt        = "updated_at"
)

var saveScript = redis.NewScript(`
local generation = redis.call("HINCRBY", KEYS[1], "generation", 1)
redis.call("HSET", KEYS[1], "status", ARGV[1], "payload", ARGV[2], "last_transition_at", ARGV[3], "updated_at", ARGV[4])
redis.call("HSETNX", KEYS[1], "created_at", ARGV[4])
return generation
`)

var saveIfGenerationScript = redis.NewScript(`
local current = tonumber(redis.call("HGET", KEYS[1], "generation") or "0")
if current == 0 or current ~= tonumber(ARGV[5]) then
  return 0
end
local generation = redis.call("HINCRBY", KEYS[1], "generation", 1)
redis.call("HSET", KEYS[1], "status", ARGV[1], "payload", ARGV[2], "last_transition_at", ARGV[3], "updated_at", ARGV[4])
return generation
`)

// Store keeps one hash per wallet. Writes run as Lua scripts so the
// generation bump and the field update are atomic.
type Store struct {
	client redis.UniversalClient
	prefix string
}

func New(client redis.UniversalClient, prefix string) *Store {
	trimmed := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if trimmed == "" {
		trimmed = defaultPrefix
	}
	return &Store{client: client, prefix: trimmed}
}

func (s *Store) key(walletID string) string {
	return s.prefix + ":" + walletID
}

func (s *Store) Get(ctx context.Context, walletID string) (*models.VerificationRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.key(walletID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return decodeRecord(walletID, fields)
}

func (s *Store) Save(ctx context.Context, record *models.VerificationRecord) error {
	args, now, err := encodeArgs(record)
	if err != nil {
		return err
	}

	generation, err := saveScript.Run(ctx, s.client, []string{s.key(record.WalletID)}, args...).Int64()
	if err != nil {
		return err
	}

	record.Generation = uint64(generation)
	record.UpdatedAt = now
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	return nil
}

func (s *Store) SaveIfGeneration(ctx context.Context, record *models.VerificationRecord, generation uint64) (bool, error) {
	args, now, err := encodeArgs(record)
	if err != nil {
		return false, err
	}
	args = append(args, strconv.FormatUint(generation, 10))

	next, err := saveIfGenerationScript.Run(ctx, s.client, []string{s.key(record.WalletID)}, args...).Int64()
	if err != nil {
		return false, err
	}
	if next == 0 {
		return false, nil
	}

	record.Generation = uint64(next)
	record.UpdatedAt = now
	return true, nil
}

// ListByStatus scans every wallet hash under the prefix.
func (s *Store) ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.VerificationRecord, error) {
	var out []models.VerificationRecord
	iter := s.client.Scan(ctx, 0, s.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if fields[fieldStatus] != string(status) {
			continue
		}
		record, err := decodeRecord(strings.TrimPrefix(key, s.prefix+":"), fields)
		if err != nil {
			return nil, err
		}
		out = append(out, *record)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeArgs(record *models.VerificationRecord) ([]interface{}, time.Time, error) {
	payload, err := encodePayload(record.Payload)
	if err != nil {
		return nil, time.Time{}, err
	}
	now := time.Now().UTC()
	return []interface{}{
		string(record.Status),
		payload,
		formatTime(record.LastTransitionAt),
		formatTime(now),
	}, now, nil
}

func encodePayload(payload *models.VerificationPayload) (string, error) {
	if payload == nil {
		return "", nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error marshaling payload: %w", err)
	}
	return string(raw), nil
}

func decodeRecord(walletID string, fields map[string]string) (*models.VerificationRecord, error) {
	generation, err := strconv.ParseUint(fields[fieldGeneration], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("error parsing generation for %s: %w", walletID, err)
	}

	record := &models.VerificationRecord{
		WalletID:   walletID,
		Status:     models.VerificationStatus(fields[fieldStatus]),
		Generation: generation,
	}

	if raw := fields[fieldPayload]; raw != "" {
		var payload models.VerificationPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, fmt.Errorf("error unmarshaling payload for %s: %w", walletID, err)
		}
		record.Payload = &payload
	}

	for name, target := range map[string]*time.Time{
		fieldLastTransitionAt: &record.LastTransitionAt,
		fieldCreatedAt:        &record.CreatedAt,
		fieldUpdatedAt:        &record.UpdatedAt,
	} {
		if err := parseTime(fields[name], target); err != nil {
			return nil, fmt.Errorf("error parsing %s for %s: %w", name, walletID, err)
		}
	}

	return record, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

var errEmptyTime = errors.New("empty timestamp")

func parseTime(raw string, target *time.Time) error {
	if raw == "" {
		return errEmptyTime
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}
