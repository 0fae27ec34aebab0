package leave

import (
	"context"
	"strings"
	"time"

	"hr-portal/internal/approval"
	"hr-portal/internal/employee"
	"hr-portal/internal/events"
	"hr-portal/internal/identity"
	leaveerrors "hr-portal/internal/leave/errors"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor identity.Principal, req SubmitLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actor identity.Principal, id, note string) (LeaveResponse, error)
	Deny(ctx context.Context, actor identity.Principal, id, note string) (LeaveResponse, error)
	PendingQueue(ctx context.Context, actor identity.Principal) ([]LeaveResponse, error)
	Mine(ctx context.Context, actor identity.Principal, employeeID string) ([]LeaveResponse, error)
}

type service struct {
	col       *store.Collection[LeaveRequest]
	engine    *approval.Engine[LeaveRequest]
	authz     identity.Authorizer
	employees employee.Repository
	publisher kafka.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	client store.Client,
	authz identity.Authorizer,
	employees employee.Repository,
	publisher kafka.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}

	col := store.NewCollection[LeaveRequest](client, store.CollectionLeaveRequests)
	engine := approval.NewEngine(authz, approval.Config[LeaveRequest]{
		Collection: col,
		Resource:   identity.ResourceLeave,
		Vocab:      Vocab,
		Status:     func(r LeaveRequest) string { return r.Status },
		Owner:      func(r LeaveRequest) string { return r.EmployeeID },
		Created:    func(r LeaveRequest) int64 { return r.CreatedAt },
	}, l)

	return &service{
		col:       col,
		engine:    engine,
		authz:     authz,
		employees: employees,
		publisher: publisher,
		now:       time.Now,
		logger:    l,
	}
}

// Submit files a leave request for the acting employee. The submitter is
// always the owner; there is no way to file on someone else's behalf.
func (s *service) Submit(ctx context.Context, actor identity.Principal, req SubmitLeaveRequest) (LeaveResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceLeave, identity.ActionSubmit); err != nil {
		return LeaveResponse{}, err
	}
	if err := validateSubmit(req); err != nil {
		s.logger.Warn("submit leave validation failed",
			zap.String("employee_id", actor.ID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	// Snapshot the submitter's current name; later employee edits must not
	// rewrite request history.
	name := actor.Name
	if empl, err := s.employees.Get(ctx, actor.ID); err == nil {
		name = empl.Name
	}

	rec := LeaveRequest{
		ID:           "lr-" + uuid.NewString(),
		EmployeeID:   actor.ID,
		EmployeeName: name,
		StartDate:    strings.TrimSpace(req.StartDate),
		EndDate:      strings.TrimSpace(req.EndDate),
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
		CreatedAt:    s.now().UnixMilli(),
	}
	if err := s.col.Create(ctx, rec.ID, rec); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", rec.ID),
		zap.String("employee_id", rec.EmployeeID),
	)
	return mapToResponse(rec), nil
}

func (s *service) Approve(ctx context.Context, actor identity.Principal, id, note string) (LeaveResponse, error) {
	rec, err := s.engine.Approve(ctx, actor, id, note)
	if err != nil {
		return LeaveResponse{}, err
	}
	s.publishDecision(ctx, actor, *rec)
	return mapToResponse(*rec), nil
}

func (s *service) Deny(ctx context.Context, actor identity.Principal, id, note string) (LeaveResponse, error) {
	rec, err := s.engine.Deny(ctx, actor, id, note)
	if err != nil {
		return LeaveResponse{}, err
	}
	s.publishDecision(ctx, actor, *rec)
	return mapToResponse(*rec), nil
}

func (s *service) PendingQueue(ctx context.Context, actor identity.Principal) ([]LeaveResponse, error) {
	recs, err := s.engine.PendingFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) Mine(ctx context.Context, actor identity.Principal, employeeID string) ([]LeaveResponse, error) {
	recs, err := s.engine.MineFor(ctx, actor, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) publishDecision(ctx context.Context, actor identity.Principal, rec LeaveRequest) {
	event := events.RequestDecidedEvent{
		EventType:   "request_decided",
		RequestKind: "leave",
		RequestID:   rec.ID,
		EmployeeID:  rec.EmployeeID,
		Status:      rec.Status,
		ReviewedBy:  actor.ID,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.RequestDecidedTopic, rec.ID, event); err != nil {
		s.logger.Warn("publish request_decided failed",
			zap.String("leave_id", rec.ID),
			zap.Error(err),
		)
	}
}

func validateSubmit(req SubmitLeaveRequest) error {
	if strings.TrimSpace(req.StartDate) == "" {
		return leaveerrors.ErrStartDateRequired
	}
	if strings.TrimSpace(req.EndDate) == "" {
		return leaveerrors.ErrEndDateRequired
	}
	if strings.TrimSpace(req.Reason) == "" {
		return leaveerrors.ErrReasonRequired
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	if start.After(end) {
		return leaveerrors.ErrInvalidDateRange
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(r LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Reason:       r.Reason,
		Status:       r.Status,
		DecisionNote: r.DecisionNote,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   r.ReviewedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func mapToListResponse(recs []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(recs))
	for i, r := range recs {
		resp[i] = mapToResponse(r)
	}
	return resp
}
