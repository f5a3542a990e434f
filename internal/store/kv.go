package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/brain-sync/internal/logger"
)

type kvStorage struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueStorage returns the SQLite-backed [KeyValue] implementation
// over a single kv(key, value) table.
func NewKeyValueStorage(db *DB, log *logger.Logger) KeyValue {
	return &kvStorage{
		DB:     db,
		logger: log,
	}
}

// Get implements [KeyValue]. A missing row and a query failure are both
// reported as ("", false); only the latter is logged.
func (s *kvStorage) Get(ctx context.Context, key string) (string, bool) {
	var value string

	err := s.DB.QueryRowContext(ctx, getValue, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Err(err).Str("key", key).Msg("kv get failed")
		}
		return "", false
	}

	return value, true
}

// Set implements [KeyValue].
func (s *kvStorage) Set(ctx context.Context, key, value string) bool {
	_, err := s.DB.ExecContext(ctx, upsertValue, key, value)
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("kv set failed")
		return false
	}

	return true
}

// GetJSON implements [KeyValue]. Corrupt JSON is treated the same as a
// missing key so callers always resume from default state.
func (s *kvStorage) GetJSON(ctx context.Context, key string, v any) bool {
	raw, ok := s.Get(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Err(err).Str("key", key).Msg("kv value is not valid JSON")
		return false
	}

	return true
}

// SetJSON implements [KeyValue].
func (s *kvStorage) SetJSON(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("kv value cannot be marshalled")
		return false
	}

	return s.Set(ctx, key, string(raw))
}
