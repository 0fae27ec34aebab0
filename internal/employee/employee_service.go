package employee

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	employeeerrors "hr-portal/internal/employee/errors"
	"hr-portal/internal/events"
	"hr-portal/internal/identity"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OnboardingCascade deletes the onboarding record owned by an employee.
// Implemented by the onboarding service; declared here so employee deletion
// can cascade without a package cycle.
type OnboardingCascade interface {
	DeleteByEmployee(ctx context.Context, employeeID string) error
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Principal, req CreateEmployeeRequest) (EmployeeResponse, error)
	Directory(ctx context.Context, actor identity.Principal) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, actor identity.Principal, id string) (EmployeeResponse, error)
	Update(ctx context.Context, actor identity.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, actor identity.Principal, id string) error
}

type service struct {
	repo      Repository
	authz     identity.Authorizer
	onboard   OnboardingCascade
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	authz identity.Authorizer,
	onboard OnboardingCascade,
	publisher kafka.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}
	return &service{repo: repo, authz: authz, onboard: onboard, publisher: publisher, logger: l}
}

// NewID builds an employee id with the conventional role prefix. The prefix
// is display convention only; authorization always reads the role field.
func NewID(role string) string {
	prefix := "e-"
	if role == identity.RoleAdmin {
		prefix = "a-"
	}
	return prefix + uuid.NewString()
}

func (s *service) Create(ctx context.Context, actor identity.Principal, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceEmployee, identity.ActionCreate); err != nil {
		return EmployeeResponse{}, err
	}
	s.logger.Debug("create employee requested",
		zap.String("actor_id", actor.ID),
		zap.String("email", req.Email),
	)

	if req.Role == "" {
		req.Role = identity.RoleEmployee
	}
	if req.Status == "" {
		req.Status = StatusActive
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return EmployeeResponse{}, mapStoreError(err)
	}

	empl := Employee{
		ID:         NewID(req.Role),
		Role:       req.Role,
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Title:      req.Title,
		Status:     req.Status,
	}
	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapStoreError(err)
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		EmployeeID: empl.ID,
		Email:      empl.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.EmployeeLifecycleTopic, empl.ID, event); err != nil {
		// Best effort: the record is already committed.
		s.logger.Warn("publish employee_created failed",
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("create employee success", zap.String("employee_id", empl.ID))
	return mapToResponse(empl), nil
}

// Directory lists non-admin accounts. Admin accounts are not employees for
// directory purposes, regardless of who asks.
func (s *service) Directory(ctx context.Context, actor identity.Principal) ([]EmployeeResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceEmployee, identity.ActionRead); err != nil {
		return nil, err
	}
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("directory listing failed", zap.Error(err))
		return nil, mapStoreError(err)
	}

	out := make([]EmployeeResponse, 0, len(all))
	for _, e := range all {
		if e.Role == identity.RoleAdmin {
			continue
		}
		out = append(out, mapToResponse(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *service) GetByID(ctx context.Context, actor identity.Principal, id string) (EmployeeResponse, error) {
	if err := identity.RequireSelfOrAdmin(actor, id); err != nil {
		return EmployeeResponse{}, err
	}
	empl, err := s.repo.Get(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapStoreError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, actor identity.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceEmployee, identity.ActionUpdate); err != nil {
		return EmployeeResponse{}, err
	}

	partial := make(map[string]any)
	if req.Name != nil {
		partial["name"] = *req.Name
	}
	if req.Email != nil {
		partial["email"] = *req.Email
	}
	if req.Department != nil {
		partial["department"] = *req.Department
	}
	if req.Title != nil {
		partial["title"] = *req.Title
	}
	if req.Status != nil {
		partial["status"] = *req.Status
	}
	if len(partial) == 0 {
		return EmployeeResponse{}, apperror.ErrInvalidInput
	}

	empl, err := s.repo.Patch(ctx, id, partial)
	if err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapStoreError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// Delete removes the employee and cascades to its onboarding record, located
// by employeeId filter rather than the possibly-stale onboardingId backref.
// Historical leave and profile-change requests are kept as an audit trail.
func (s *service) Delete(ctx context.Context, actor identity.Principal, id string) error {
	if err := s.authz.Can(actor, identity.ResourceEmployee, identity.ActionDelete); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapStoreError(err)
	}

	if s.onboard != nil {
		if err := s.onboard.DeleteByEmployee(ctx, id); err != nil {
			// The employee record is already gone; surface the partial
			// state instead of pretending the cascade finished.
			s.logger.Error("onboarding cascade delete failed",
				zap.String("employee_id", id),
				zap.Error(err),
			)
			return err
		}
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Role:           e.Role,
		Name:           e.Name,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Department:     e.Department,
		Title:          e.Title,
		Status:         e.Status,
		Gender:         e.Gender,
		DateOfBirth:    e.DateOfBirth,
		MaritalStatus:  e.MaritalStatus,
		Nationality:    e.Nationality,
		Phone:          e.Phone,
		Address:        e.Address,
		ContactDetails: e.ContactDetails,
		OnboardingID:   e.OnboardingID,
	}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, store.ErrUnavailable):
		return apperror.Wrap(err, apperror.CodeStoreUnavailable, apperror.ErrStoreUnavailable.Message, http.StatusServiceUnavailable)
	default:
		return err
	}
}
