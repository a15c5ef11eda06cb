package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

const (
	// MaxRecords caps the persisted record list.
	MaxRecords = 50

	// DefaultRecordsKey is the blob key the record list is stored under.
	DefaultRecordsKey = "game-records"
)

// History is the persisted list of completed rounds, most recent first.
// It is hydrated once with Load and written through on every Append.
// History is not safe for concurrent use.
type History struct {
	blobs   BlobStore
	key     string
	logger  *zap.Logger
	records []GameRecord
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithKey overrides the blob key.
func WithKey(key string) HistoryOption {
	return func(h *History) { h.key = key }
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(l *zap.Logger) HistoryOption {
	return func(h *History) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHistory creates an empty History over blobs. Call Load to hydrate it.
func NewHistory(blobs BlobStore, opts ...HistoryOption) *History {
	h := &History{
		blobs:  blobs,
		key:    DefaultRecordsKey,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load replaces the in-memory list with the stored one. A missing blob, a
// read failure, or a blob that does not decode all leave the list empty.
func (h *History) Load(ctx context.Context) {
	h.records = nil

	blob, ok, err := h.blobs.Load(ctx, h.key)
	if err != nil {
		h.logger.Warn("load game records", zap.String("key", h.key), zap.Error(err))
		return
	}
	if !ok {
		return
	}

	records, err := decodeRecords(blob)
	if err != nil {
		h.logger.Warn("discarding corrupt game records",
			zap.String("key", h.key), zap.Int("bytes", len(blob)), zap.Error(err))
		return
	}
	h.records = records
	h.logger.Debug("loaded game records", zap.Int("count", len(records)))
}

// Append prepends rec, evicts records beyond MaxRecords, and saves the list.
// The in-memory list keeps rec even if the save fails.
func (h *History) Append(ctx context.Context, rec GameRecord) error {
	records := make([]GameRecord, 0, len(h.records)+1)
	records = append(records, rec)
	records = append(records, h.records...)
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	h.records = records

	blob, err := json.Marshal(h.records)
	if err != nil {
		return fmt.Errorf("marshal game records: %w", err)
	}
	if err := h.blobs.Save(ctx, h.key, blob); err != nil {
		return fmt.Errorf("save game records: %w", err)
	}
	return nil
}

// List returns a copy of the records, most recent first.
func (h *History) List() []GameRecord {
	out := make([]GameRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of records held.
func (h *History) Len() int {
	return len(h.records)
}

// Reset clears the list and removes the stored blob.
func (h *History) Reset(ctx context.Context) error {
	h.records = nil
	if err := h.blobs.Delete(ctx, h.key); err != nil {
		return fmt.Errorf("reset game records: %w", err)
	}
	return nil
}

// decodeRecords parses a stored blob. Lists longer than MaxRecords are
// truncated to the most recent entries.
func decodeRecords(blob []byte) ([]GameRecord, error) {
	var records []GameRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, err
	}
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	return records, nil
}
