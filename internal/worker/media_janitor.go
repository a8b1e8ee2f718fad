// Package worker holds long-running background loops started from
// cmd/server.
package worker

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/media"
)

// MediaJanitor periodically sweeps the disk blob store and removes
// files no database row references anymore. Best-effort deletes in the
// services can leave such orphans behind; the janitor is the cleanup of
// last resort.
type MediaJanitor struct {
	pool     *pgxpool.Pool
	store    *media.DiskStore
	interval time.Duration
	log      zerolog.Logger
}

// NewMediaJanitor creates a new MediaJanitor.
func NewMediaJanitor(pool *pgxpool.Pool, store *media.DiskStore, interval time.Duration, log zerolog.Logger) *MediaJanitor {
	return &MediaJanitor{
		pool:     pool,
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "media_janitor").Logger(),
	}
}

// Start begins the sweep loop. Call in a goroutine. A non-positive
// interval disables the janitor.
func (w *MediaJanitor) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.log.Info().Msg("Janitor disabled")
		return
	}

	w.log.Info().Dur("interval", w.interval).Msg("Worker started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				w.log.Error().Err(err).Msg("Sweep failed")
			}
		}
	}
}

// sweep deletes every blob on disk whose key is not referenced by any
// row. The reference set is a snapshot taken before the walk, and the
// services upload the blob before inserting its row, so a file that
// lands mid-sweep can be on disk without being in the snapshot yet.
// Files younger than the sweep interval are therefore spared until the
// next run, when their row is either committed or truly absent.
func (w *MediaJanitor) sweep(ctx context.Context) error {
	referenced, err := w.referencedKeys(ctx)
	if err != nil {
		return err
	}

	removed := 0
	now := time.Now()
	err = w.store.Walk(func(key string, modTime time.Time) error {
		if !w.isOrphan(key, modTime, referenced, now) {
			return nil
		}
		if err := w.store.Delete(ctx, key); err != nil {
			w.log.Warn().Err(err).Str("key", key).Msg("Failed to delete orphan blob")
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		return err
	}

	if removed > 0 {
		w.log.Info().Int("removed", removed).Msg("Swept orphan blobs")
	}
	return nil
}

// isOrphan reports whether a blob is safe to remove: unreferenced by
// the snapshot and old enough that any in-flight row insert for it has
// long since committed.
func (w *MediaJanitor) isOrphan(key string, modTime time.Time, referenced map[string]struct{}, now time.Time) bool {
	if _, ok := referenced[key]; ok {
		return false
	}
	return now.Sub(modTime) >= w.interval
}

func (w *MediaJanitor) referencedKeys(ctx context.Context) (map[string]struct{}, error) {
	rows, err := w.pool.Query(ctx,
		`SELECT storage_key FROM uploads
		 UNION SELECT storage_key FROM class_materials
		 UNION SELECT photo_key FROM employees WHERE photo_key <> ''
		 UNION SELECT logo_key FROM bank_accounts WHERE logo_key <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys[key] = struct{}{}
	}
	return keys, rows.Err()
}
