package cache

import (
	"context"
	"time"
)

// Cache là contract tối thiểu mà các service cần (hiện tại: danh sách carrusel).
// Giá trị được encode/decode bởi implementation.
type Cache interface {
	// Get decode value vào dest. found=false nghĩa là miss, dest giữ nguyên.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete bỏ qua keys không tồn tại
	Delete(ctx context.Context, keys ...string) error

	// Ping dùng cho /health
	Ping(ctx context.Context) error
}
