package approval

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"hr-portal/internal/identity"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store"

	"go.uber.org/zap"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"request has already been decided",
		http.StatusConflict,
	)
)

// Vocabulary is the status wording of one request kind. Profile-change
// requests use lowercase statuses, leave requests capitalized ones; the
// machine is identical, so comparisons fold case.
type Vocabulary struct {
	Pending  string
	Approved string
	Denied   string
}

func (v Vocabulary) IsPending(status string) bool {
	return strings.EqualFold(status, v.Pending)
}

// Config parameterizes the engine for one request entity.
type Config[T any] struct {
	Collection *store.Collection[T]
	// Resource is the identity resource gating decide/read_all/read_own.
	Resource string
	Vocab    Vocabulary
	Status   func(T) string
	Owner    func(T) string
	Created  func(T) int64
	// OnApprove runs the approval side effect (e.g. patching the employee
	// record) before the status transition is persisted. The two writes
	// are not atomic; if the second fails the request stays pending and a
	// retried approval re-applies the same patch, which is a no-op.
	OnApprove func(ctx context.Context, rec T) error
}

// Engine is the shared pending -> approved|denied state machine. Both
// terminal states are final: once a request leaves pending, every further
// transition fails without mutating the record.
type Engine[T any] struct {
	cfg    Config[T]
	authz  identity.Authorizer
	now    func() time.Time
	logger *zap.Logger
}

func NewEngine[T any](authz identity.Authorizer, cfg Config[T], logger ...*zap.Logger) *Engine[T] {
	l := zap.L().Named("approval.engine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.engine")
	}
	return &Engine[T]{cfg: cfg, authz: authz, now: time.Now, logger: l}
}

func (e *Engine[T]) Approve(ctx context.Context, actor identity.Principal, id, note string) (*T, error) {
	return e.decide(ctx, actor, id, e.cfg.Vocab.Approved, note)
}

func (e *Engine[T]) Deny(ctx context.Context, actor identity.Principal, id, note string) (*T, error) {
	return e.decide(ctx, actor, id, e.cfg.Vocab.Denied, note)
}

func (e *Engine[T]) decide(ctx context.Context, actor identity.Principal, id, target, note string) (*T, error) {
	if err := e.authz.Can(actor, e.cfg.Resource, identity.ActionDecide); err != nil {
		e.logger.Warn("decide forbidden",
			zap.String("resource", e.cfg.Resource),
			zap.String("request_id", id),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", actor.Role),
		)
		return nil, err
	}

	// Status is read immediately before the write. The store cannot CAS on
	// our behalf through this interface, so a concurrent decision landing
	// between this read and the patch below is a known, narrow race; both
	// bundled backends serialize the patch itself.
	rec, err := e.cfg.Collection.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !e.cfg.Vocab.IsPending(e.cfg.Status(*rec)) {
		e.logger.Warn("decide on non-pending request",
			zap.String("resource", e.cfg.Resource),
			zap.String("request_id", id),
			zap.String("status", e.cfg.Status(*rec)),
			zap.String("target_status", target),
		)
		return nil, ErrAlreadyDecided
	}

	if target == e.cfg.Vocab.Approved && e.cfg.OnApprove != nil {
		if err := e.cfg.OnApprove(ctx, *rec); err != nil {
			e.logger.Error("approval side effect failed",
				zap.String("resource", e.cfg.Resource),
				zap.String("request_id", id),
				zap.Error(err),
			)
			return nil, err
		}
	}

	updated, err := e.cfg.Collection.Patch(ctx, id, map[string]any{
		"status":       target,
		"decisionNote": note,
		"reviewedBy":   actor.ID,
		"reviewedAt":   e.now().UnixMilli(),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	e.logger.Info("request decided",
		zap.String("resource", e.cfg.Resource),
		zap.String("request_id", id),
		zap.String("status", target),
		zap.String("reviewed_by", actor.ID),
	)
	return updated, nil
}

// PendingFor returns the system-wide pending queue. Admin only.
func (e *Engine[T]) PendingFor(ctx context.Context, actor identity.Principal) ([]T, error) {
	if err := e.authz.Can(actor, e.cfg.Resource, identity.ActionReadAll); err != nil {
		return nil, err
	}
	recs, err := e.cfg.Collection.List(ctx, store.Filter{"status": e.cfg.Vocab.Pending})
	if err != nil {
		return nil, mapStoreError(err)
	}
	e.sortNewestFirst(recs)
	return recs, nil
}

// MineFor returns every request owned by employeeID regardless of status,
// newest first. Owners see their own history; admins see anyone's.
func (e *Engine[T]) MineFor(ctx context.Context, actor identity.Principal, employeeID string) ([]T, error) {
	if err := identity.RequireSelfOrAdmin(actor, employeeID); err != nil {
		return nil, err
	}
	recs, err := e.cfg.Collection.List(ctx, store.Filter{"employeeId": employeeID})
	if err != nil {
		return nil, mapStoreError(err)
	}
	e.sortNewestFirst(recs)
	return recs, nil
}

func (e *Engine[T]) sortNewestFirst(recs []T) {
	sort.SliceStable(recs, func(i, j int) bool {
		return e.cfg.Created(recs[i]) > e.cfg.Created(recs[j])
	})
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrRequestNotFound
	case errors.Is(err, store.ErrUnavailable):
		return apperror.Wrap(err, apperror.CodeStoreUnavailable, apperror.ErrStoreUnavailable.Message, http.StatusServiceUnavailable)
	default:
		return err
	}
}
