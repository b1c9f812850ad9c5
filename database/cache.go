package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"travelplanner/logger"
)

// APICache keeps upstream lookups in the api_cache table.
type APICache struct {
	store *Store
	now   func() time.Time
}

func NewAPICache(s *Store) *APICache {
	return &APICache{store: s, now: time.Now}
}

// Get returns the cached payload for (key, dataType). Expired rows are a miss.
func (c *APICache) Get(ctx context.Context, key, dataType string) ([]byte, bool, error) {
	var data string
	err := c.store.db.QueryRowContext(ctx, c.store.rebind(`
		SELECT response_data FROM api_cache
		WHERE route_key = ? AND data_type = ? AND expires_at > ?`),
		key, dataType, c.now().Unix()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (c *APICache) Set(ctx context.Context, key, dataType string, data []byte, ttl time.Duration) error {
	now := c.now()
	_, err := c.store.db.ExecContext(ctx, c.store.rebind(`
		INSERT INTO api_cache (route_key, data_type, response_data, last_updated, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (route_key, data_type) DO UPDATE SET
			response_data = excluded.response_data,
			last_updated  = excluded.last_updated,
			expires_at    = excluded.expires_at`),
		key, dataType, string(data), now.Unix(), now.Add(ttl).Unix())
	return err
}

// PurgeExpired deletes rows whose expiry has passed and reports how many.
func (c *APICache) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := c.store.db.ExecContext(ctx, c.store.rebind(
		`DELETE FROM api_cache WHERE expires_at <= ?`), c.now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PurgeLoop purges expired rows immediately and then every interval until
// ctx is done.
func (c *APICache) PurgeLoop(ctx context.Context, every time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		n, err := c.PurgeExpired(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Warn("Cache purge failed", logger.Error(err))
		case n > 0:
			log.Debug("Expired cache rows removed", logger.Int("rows", int(n)))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
