package onboarding

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"hr-portal/internal/employee"
	"hr-portal/internal/identity"
	onboardingerrors "hr-portal/internal/onboarding/errors"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	EnsureRecord(ctx context.Context, actor identity.Principal, employeeID string) (OnboardingResponse, error)
	SaveBlock(ctx context.Context, actor identity.Principal, recordID, blockName string, req SaveBlockRequest) (OnboardingResponse, error)
	Advance(ctx context.Context, actor identity.Principal, recordID string, req AdvanceRequest) (OnboardingResponse, error)
	AddDocument(ctx context.Context, actor identity.Principal, recordID string, req AddDocumentRequest) (OnboardingResponse, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
}

type service struct {
	col       *store.Collection[OnboardingRecord]
	employees employee.Repository
	authz     identity.Authorizer
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	client store.Client,
	authz identity.Authorizer,
	employees employee.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{
		col:       store.NewCollection[OnboardingRecord](client, store.CollectionOnboarding),
		employees: employees,
		authz:     authz,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

// EnsureRecord is the single entry point into the workflow: it returns the
// employee's onboarding record, creating it with defaulted blocks when
// absent. Find-or-create keys on employeeId, and concurrent calls within
// this process collapse through singleflight so only one create runs.
// Between independent processes the store's Create-by-id rejection keeps a
// second record from replacing the first, but a cross-process duplicate
// window remains since the store has no unique index on employeeId.
func (s *service) EnsureRecord(ctx context.Context, actor identity.Principal, employeeID string) (OnboardingResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceOnboarding, identity.ActionManage); err != nil {
		return OnboardingResponse{}, err
	}

	v, err, _ := s.sf.Do(employeeID, func() (interface{}, error) {
		return s.findOrCreate(ctx, employeeID)
	})
	if err != nil {
		return OnboardingResponse{}, err
	}
	rec := v.(OnboardingRecord)
	return mapToResponse(rec), nil
}

func (s *service) findOrCreate(ctx context.Context, employeeID string) (OnboardingRecord, error) {
	existing, err := s.col.List(ctx, store.Filter{"employeeId": employeeID})
	if err != nil {
		return OnboardingRecord{}, mapStoreError(err)
	}
	if len(existing) > 0 {
		rec := existing[0]
		// Repair a missing backref from an earlier partial create.
		s.relink(ctx, employeeID, rec.ID)
		return rec, nil
	}

	empl, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return OnboardingRecord{}, onboardingerrors.ErrEmployeeNotFound
		}
		return OnboardingRecord{}, mapStoreError(err)
	}

	rec := defaultRecord()
	rec.ID = "ob-" + uuid.NewString()
	rec.EmployeeID = empl.ID
	rec.CreatedAt = s.now().UnixMilli()
	rec.UpdatedAt = rec.CreatedAt

	if err := s.col.Create(ctx, rec.ID, rec); err != nil {
		s.logger.Error("create onboarding record failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return OnboardingRecord{}, mapStoreError(err)
	}
	s.relink(ctx, employeeID, rec.ID)

	s.logger.Info("onboarding record created",
		zap.String("onboarding_id", rec.ID),
		zap.String("employee_id", employeeID),
	)
	return rec, nil
}

// relink sets the non-owning onboardingId backref on the employee. Failures
// are logged, not returned: the record itself is authoritative and the next
// EnsureRecord repairs the link.
func (s *service) relink(ctx context.Context, employeeID, recordID string) {
	empl, err := s.employees.Get(ctx, employeeID)
	if err != nil || empl.OnboardingID == recordID {
		return
	}
	if _, err := s.employees.Patch(ctx, employeeID, map[string]any{"onboardingId": recordID}); err != nil {
		s.logger.Warn("link onboardingId failed",
			zap.String("employee_id", employeeID),
			zap.String("onboarding_id", recordID),
			zap.Error(err),
		)
	}
}

// SaveBlock shallow-merges the partial update into the named data block:
// mentioned keys overwrite, unmentioned keys persist.
func (s *service) SaveBlock(ctx context.Context, actor identity.Principal, recordID, blockName string, req SaveBlockRequest) (OnboardingResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceOnboarding, identity.ActionManage); err != nil {
		return OnboardingResponse{}, err
	}
	if !IsBlock(blockName) {
		return OnboardingResponse{}, onboardingerrors.ErrUnknownBlock
	}

	rec, err := s.col.Get(ctx, recordID)
	if err != nil {
		return OnboardingResponse{}, mapStoreError(err)
	}

	merged := store.Merge(rec.block(blockName), req.Data)
	updated, err := s.col.Patch(ctx, recordID, map[string]any{
		blockName:   merged,
		"updatedAt": s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("save onboarding block failed",
			zap.String("onboarding_id", recordID),
			zap.String("block", blockName),
			zap.Error(err),
		)
		return OnboardingResponse{}, mapStoreError(err)
	}
	return mapToResponse(*updated), nil
}

// Advance moves the record to any step, forward or backward. No validation
// of prior step completeness; the workflow is deliberately permissive.
func (s *service) Advance(ctx context.Context, actor identity.Principal, recordID string, req AdvanceRequest) (OnboardingResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceOnboarding, identity.ActionManage); err != nil {
		return OnboardingResponse{}, err
	}
	if !IsStep(req.Step) {
		return OnboardingResponse{}, onboardingerrors.ErrUnknownStep
	}

	updated, err := s.col.Patch(ctx, recordID, map[string]any{
		"step":      req.Step,
		"updatedAt": s.now().UnixMilli(),
	})
	if err != nil {
		return OnboardingResponse{}, mapStoreError(err)
	}
	s.logger.Info("onboarding step set",
		zap.String("onboarding_id", recordID),
		zap.String("step", req.Step),
	)
	return mapToResponse(*updated), nil
}

func (s *service) AddDocument(ctx context.Context, actor identity.Principal, recordID string, req AddDocumentRequest) (OnboardingResponse, error) {
	if err := s.authz.Can(actor, identity.ResourceOnboarding, identity.ActionManage); err != nil {
		return OnboardingResponse{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return OnboardingResponse{}, onboardingerrors.ErrDocumentNameRequired
	}

	rec, err := s.col.Get(ctx, recordID)
	if err != nil {
		return OnboardingResponse{}, mapStoreError(err)
	}

	doc := Document{
		ID:         "doc-" + uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Type:       req.Type,
		Notes:      req.Notes,
		UploadedAt: s.now().UnixMilli(),
	}
	docs := append(rec.Documents, doc)

	updated, err := s.col.Patch(ctx, recordID, map[string]any{
		"documents": docs,
		"updatedAt": s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("add onboarding document failed",
			zap.String("onboarding_id", recordID),
			zap.Error(err),
		)
		return OnboardingResponse{}, mapStoreError(err)
	}
	s.logger.Info("onboarding document added",
		zap.String("onboarding_id", recordID),
		zap.String("document_id", doc.ID),
	)
	return mapToResponse(*updated), nil
}

// DeleteByEmployee removes every onboarding record owned by the employee.
// Lookup goes through the employeeId filter, not the onboardingId backref,
// so stale links cannot orphan a record.
func (s *service) DeleteByEmployee(ctx context.Context, employeeID string) error {
	recs, err := s.col.List(ctx, store.Filter{"employeeId": employeeID})
	if err != nil {
		return mapStoreError(err)
	}
	for _, rec := range recs {
		if err := s.col.Delete(ctx, rec.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return mapStoreError(err)
		}
		s.logger.Info("onboarding record deleted",
			zap.String("onboarding_id", rec.ID),
			zap.String("employee_id", employeeID),
		)
	}
	return nil
}

func mapToResponse(r OnboardingRecord) OnboardingResponse {
	return OnboardingResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Step:       r.Step,
		Progress:   Progress(r.Step),
		Personal:   r.Personal,
		Address:    r.Address,
		Store:      r.Store,
		Payroll:    r.Payroll,
		Documents:  r.Documents,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return onboardingerrors.ErrRecordNotFound
	case errors.Is(err, store.ErrUnavailable):
		return apperror.Wrap(err, apperror.CodeStoreUnavailable, apperror.ErrStoreUnavailable.Message, http.StatusServiceUnavailable)
	default:
		return err
	}
}
