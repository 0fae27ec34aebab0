package profilechange

import (
	"context"
	"errors"
	"time"

	"hr-portal/internal/approval"
	"hr-portal/internal/employee"
	"hr-portal/internal/events"
	"hr-portal/internal/identity"
	"hr-portal/internal/messaging/kafka"
	profilechangeerrors "hr-portal/internal/profilechange/errors"
	"hr-portal/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profilechange_service.go -destination=mock/profilechange_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor identity.Principal, req SubmitChangeRequest) (ChangeRequestResponse, error)
	Approve(ctx context.Context, actor identity.Principal, id, note string) (ChangeRequestResponse, error)
	Deny(ctx context.Context, actor identity.Principal, id, note string) (ChangeRequestResponse, error)
	PendingQueue(ctx context.Context, actor identity.Principal) ([]ChangeRequestResponse, error)
	Mine(ctx context.Context, actor identity.Principal, employeeID string) ([]ChangeRequestResponse, error)
}

type service struct {
	col       *store.Collection[ProfileChangeRequest]
	engine    *approval.Engine[ProfileChangeRequest]
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
	l := zap.L().Named("profilechange.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profilechange.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}

	col := store.NewCollection[ProfileChangeRequest](client, store.CollectionProfileChanges)
	s := &service{
		col:       col,
		authz:     authz,
		employees: employees,
		publisher: publisher,
		now:       time.Now,
		logger:    l,
	}
	s.engine = approval.NewEngine(authz, approval.Config[ProfileChangeRequest]{
		Collection: col,
		Resource:   identity.ResourceProfileChange,
		Vocab:      Vocab,
		Status:     func(r ProfileChangeRequest) string { return r.Status },
		Owner:      func(r ProfileChangeRequest) string { return r.EmployeeID },
		Created:    func(r ProfileChangeRequest) int64 { return r.CreatedAt },
		OnApprove:  s.applyChanges,
	}, l)
	return s
}

// Submit files a profile-change request for the acting employee and freezes
// the name/email snapshot from the current employee record.
func (s *service) Submit(ctx context.Context, actor identity.Principal, req SubmitChangeRequest) (ChangeRequestResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceProfileChange, identity.ActionSubmit); err != nil {
		return ChangeRequestResponse{}, err
	}
	if req.RequestedChanges.IsEmpty() {
		return ChangeRequestResponse{}, profilechangeerrors.ErrNoChangesRequested
	}

	empl, err := s.employees.Get(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ChangeRequestResponse{}, profilechangeerrors.ErrSubmitterNotFound
		}
		return ChangeRequestResponse{}, err
	}

	rec := ProfileChangeRequest{
		ID:               "pcr-" + uuid.NewString(),
		EmployeeID:       empl.ID,
		EmployeeName:     empl.Name,
		EmployeeEmail:    empl.Email,
		RequestedChanges: req.RequestedChanges,
		Status:           StatusPending,
		CreatedAt:        s.now().UnixMilli(),
	}
	if err := s.col.Create(ctx, rec.ID, rec); err != nil {
		s.logger.Error("submit profile change persist failed", zap.Error(err))
		return ChangeRequestResponse{}, err
	}

	s.logger.Info("submit profile change success",
		zap.String("request_id", rec.ID),
		zap.String("employee_id", rec.EmployeeID),
	)
	return mapToResponse(rec), nil
}

// applyChanges merges the requested changes into the employee record. This
// runs before the request's own status flips; the two writes are separate,
// so a retried approval after a crash re-applies the same shallow patch,
// which converges to the same employee state.
func (s *service) applyChanges(ctx context.Context, rec ProfileChangeRequest) error {
	patch, err := store.Encode(rec.RequestedChanges)
	if err != nil {
		return err
	}
	if _, err := s.employees.Patch(ctx, rec.EmployeeID, patch); err != nil {
		s.logger.Error("apply approved changes failed",
			zap.String("request_id", rec.ID),
			zap.String("employee_id", rec.EmployeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) Approve(ctx context.Context, actor identity.Principal, id, note string) (ChangeRequestResponse, error) {
	rec, err := s.engine.Approve(ctx, actor, id, note)
	if err != nil {
		return ChangeRequestResponse{}, err
	}
	s.publishDecision(ctx, actor, *rec)
	return mapToResponse(*rec), nil
}

func (s *service) Deny(ctx context.Context, actor identity.Principal, id, note string) (ChangeRequestResponse, error) {
	rec, err := s.engine.Deny(ctx, actor, id, note)
	if err != nil {
		return ChangeRequestResponse{}, err
	}
	s.publishDecision(ctx, actor, *rec)
	return mapToResponse(*rec), nil
}

func (s *service) PendingQueue(ctx context.Context, actor identity.Principal) ([]ChangeRequestResponse, error) {
	recs, err := s.engine.PendingFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) Mine(ctx context.Context, actor identity.Principal, employeeID string) ([]ChangeRequestResponse, error) {
	recs, err := s.engine.MineFor(ctx, actor, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(recs), nil
}

func (s *service) publishDecision(ctx context.Context, actor identity.Principal, rec ProfileChangeRequest) {
	event := events.RequestDecidedEvent{
		EventType:   "request_decided",
		RequestKind: "profile_change",
		RequestID:   rec.ID,
		EmployeeID:  rec.EmployeeID,
		Status:      rec.Status,
		ReviewedBy:  actor.ID,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.RequestDecidedTopic, rec.ID, event); err != nil {
		s.logger.Warn("publish request_decided failed",
			zap.String("request_id", rec.ID),
			zap.Error(err),
		)
	}
}

func mapToResponse(r ProfileChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		EmployeeEmail:    r.EmployeeEmail,
		RequestedChanges: r.RequestedChanges,
		Status:           r.Status,
		DecisionNote:     r.DecisionNote,
		ReviewedBy:       r.ReviewedBy,
		ReviewedAt:       r.ReviewedAt,
		CreatedAt:        r.CreatedAt,
	}
}

func mapToListResponse(recs []ProfileChangeRequest) []ChangeRequestResponse {
	resp := make([]ChangeRequestResponse, len(recs))
	for i, r := range recs {
		resp[i] = mapToResponse(r)
	}
	return resp
}
