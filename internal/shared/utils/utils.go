package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Default pagination của legacy API: skip=0, limit=100
const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Pagination là skip/limit sau khi đã normalize
type Pagination struct {
	Skip  int
	Limit int
}

// ParsePagination đọc skip/limit từ query; giá trị không hợp lệ trả về lỗi
func ParsePagination(c *gin.Context) (Pagination, error) {
	p := Pagination{Skip: DefaultSkip, Limit: DefaultLimit}

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return p, fmt.Errorf("skip must be a non-negative integer")
		}
		p.Skip = v
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return p, fmt.Errorf("limit must be a non-negative integer")
		}
		p.Limit = v
	}

	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p, nil
}

// ParseID parses a path parameter as a positive integer id.
func ParseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// QueryInt64 returns nil when the query parameter is absent.
func QueryInt64(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// QueryString returns nil when the query parameter is absent or blank.
func QueryString(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// PlaceholderValue là giá trị mẫu mà generated client gửi lên cho field string.
// Khi nhận được, giữ nguyên giá trị hiện tại.
const PlaceholderValue = "string"

// KeepIfPlaceholder returns current when incoming is the placeholder,
// otherwise incoming (nil included).
func KeepIfPlaceholder(incoming, current *string) *string {
	if incoming != nil && *incoming == PlaceholderValue {
		return current
	}
	return incoming
}

// Ptr trả về pointer của v
func Ptr[T any](v T) *T {
	return &v
}
