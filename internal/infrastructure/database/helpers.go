package database

import (
	"github.com/rs/zerolog/log"
)

// Close đóng tất cả connections trong pool.
// Safe to call multiple times - subsequent calls là no-op
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")

	return nil
}

// PoolStats là snapshot thống kê của connection pool, dùng cho /health
type PoolStats struct {
	AcquiredConns int32 `json:"acquired_connections"`
	IdleConns     int32 `json:"idle_connections"`
	TotalConns    int32 `json:"total_connections"`
	MaxConns      int32 `json:"max_connections"`
}

// Stats trả về snapshot của connection pool statistics (nil nếu pool chưa init)
func (db *PostgresDB) Stats() *PoolStats {
	if db.Pool == nil {
		return nil
	}
	raw := db.Pool.Stat()
	return &PoolStats{
		AcquiredConns: raw.AcquiredConns(),
		IdleConns:     raw.IdleConns(),
		TotalConns:    raw.TotalConns(),
		MaxConns:      raw.MaxConns(),
	}
}
