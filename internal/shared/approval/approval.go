package approval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"giit-backend/internal/shared/apperror"
)

// Vocabulary là bộ nhãn trạng thái duyệt của một loại entity
type Vocabulary struct {
	Pending  string
	Approved string
	Rejected string
}

var (
	PublicacionStates = Vocabulary{Pending: "pendiente", Approved: "aprobada", Rejected: "rechazada"}
	ProductoStates    = Vocabulary{Pending: "pendiente", Approved: "aprobado", Rejected: "rechazado"}
)

func (v Vocabulary) Values() []string {
	return []string{v.Pending, v.Approved, v.Rejected}
}

func (v Vocabulary) Valid(state string) bool {
	return state == v.Pending || state == v.Approved || state == v.Rejected
}

// Decision là hành động duyệt có tên
type Decision int

const (
	Approve Decision = iota
	Reject
)

func (d Decision) state(v Vocabulary) string {
	if d == Reject {
		return v.Rejected
	}
	return v.Approved
}

// Approver là projection tối thiểu của Usuario đã duyệt
type Approver struct {
	ID       int64
	Nombre   string
	Apellido string
}

// ApproverLookup resolves an approver by id; (nil, nil) means no such user.
type ApproverLookup interface {
	FindApprover(ctx context.Context, id int64) (*Approver, error)
}

// LookupFunc adapts a function to ApproverLookup.
type LookupFunc func(ctx context.Context, id int64) (*Approver, error)

func (f LookupFunc) FindApprover(ctx context.Context, id int64) (*Approver, error) {
	return f(ctx, id)
}

// Transition là kết quả đã tính toán, chưa ghi xuống store.
// Stamp == false nghĩa là chỉ đổi state, giữ nguyên approver và timestamp.
type Transition struct {
	State      string
	Stamp      bool
	ApproverID *int64
	ApprovedAt *time.Time
	Approver   *Approver
}

var (
	ErrApproverNotFound = apperror.NotFound("APROBADOR_NOT_FOUND", "El aprobador especificado no existe")
)

func invalidState(v Vocabulary, state string) *apperror.AppError {
	return apperror.Validation("INVALID_ESTADO",
		fmt.Sprintf("Estado inválido '%s', valores permitidos: %s", state, strings.Join(v.Values(), ", ")))
}

// Engine computes approval transitions. It never writes; callers persist the
// returned Transition so a failed check leaves stored state untouched.
type Engine struct {
	approvers ApproverLookup
	now       func() time.Time
}

func NewEngine(approvers ApproverLookup) *Engine {
	return &Engine{
		approvers: approvers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock thay clock, dùng trong tests
func (e *Engine) WithClock(now func() time.Time) *Engine {
	return &Engine{approvers: e.approvers, now: now}
}

// Decide handles approve and reject. The approver must exist.
func (e *Engine) Decide(ctx context.Context, v Vocabulary, d Decision, approverID int64) (*Transition, error) {
	approver, err := e.resolve(ctx, approverID)
	if err != nil {
		return nil, err
	}
	return e.stamp(d.state(v), approver), nil
}

// SetState moves to any valid state. With a nil approverID only the state
// changes; otherwise the approver must exist and is recorded with a timestamp.
func (e *Engine) SetState(ctx context.Context, v Vocabulary, state string, approverID *int64) (*Transition, error) {
	if !v.Valid(state) {
		return nil, invalidState(v, state)
	}

	if approverID == nil {
		return &Transition{State: state}, nil
	}

	approver, err := e.resolve(ctx, *approverID)
	if err != nil {
		return nil, err
	}
	return e.stamp(state, approver), nil
}

func (e *Engine) stamp(state string, approver *Approver) *Transition {
	at := e.now()
	id := approver.ID
	return &Transition{
		State:      state,
		Stamp:      true,
		ApproverID: &id,
		ApprovedAt: &at,
		Approver:   approver,
	}
}

func (e *Engine) resolve(ctx context.Context, id int64) (*Approver, error) {
	approver, err := e.approvers.FindApprover(ctx, id)
	if err != nil {
		return nil, apperror.Internal("APROBADOR_LOOKUP_FAILED", err)
	}
	if approver == nil {
		return nil, ErrApproverNotFound
	}
	return approver, nil
}

// Message builds the human-readable result of a state update, e.g.
// "Estado actualizado a 'aprobada' por Ana Pérez".
func (t *Transition) Message(prefix string) string {
	msg := fmt.Sprintf("%s '%s'", prefix, t.State)
	if t.Approver != nil {
		msg += fmt.Sprintf(" por %s %s", t.Approver.Nombre, t.Approver.Apellido)
	}
	return msg
}
