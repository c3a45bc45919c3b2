package guard

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"giit-backend/internal/shared/apperror"
)

// ExistsFunc reports whether a row with the given id exists.
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// Reference là một foreign key cần kiểm tra trước khi ghi
type Reference struct {
	ID       *int64
	Required bool
	Exists   ExistsFunc
	Missing  *apperror.AppError // Lỗi NotFound trả về khi không tìm thấy
}

// Required tạo Reference bắt buộc
func Required(id int64, exists ExistsFunc, missing *apperror.AppError) Reference {
	return Reference{ID: &id, Required: true, Exists: exists, Missing: missing}
}

// Optional tạo Reference chỉ được kiểm tra khi id khác nil
func Optional(id *int64, exists ExistsFunc, missing *apperror.AppError) Reference {
	return Reference{ID: id, Exists: exists, Missing: missing}
}

// Require checks every reference in order and returns the first failure.
// Optional references with a nil id are skipped.
func Require(ctx context.Context, refs ...Reference) error {
	for _, ref := range refs {
		if ref.ID == nil {
			if ref.Required {
				return apperror.Validation(ref.Missing.Code, ref.Missing.Message)
			}
			continue
		}

		ok, err := ref.Exists(ctx, *ref.ID)
		if err != nil {
			return apperror.Internal("REFERENCE_CHECK_FAILED",
				fmt.Errorf("check %s(%d): %w", ref.Missing.Code, *ref.ID, err))
		}
		if !ok {
			return ref.Missing
		}
	}
	return nil
}

// Dependent là một bảng có foreign key trỏ về row cần xóa
type Dependent struct {
	Name string
	Has  ExistsFunc
}

// EnsureNoDependents returns blocked when any dependent references id.
func EnsureNoDependents(ctx context.Context, id int64, blocked *apperror.AppError, deps ...Dependent) error {
	for _, dep := range deps {
		has, err := dep.Has(ctx, id)
		if err != nil {
			return apperror.Internal("DEPENDENCY_CHECK_FAILED",
				fmt.Errorf("check %s for %d: %w", dep.Name, id, err))
		}
		if has {
			log.Debug().
				Int64("id", id).
				Str("dependent", dep.Name).
				Msg("[GUARD] delete blocked by dependents")
			return blocked
		}
	}
	return nil
}
