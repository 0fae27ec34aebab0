package paystub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"hr-portal/internal/employee"
	"hr-portal/internal/identity"
	paystuberrors "hr-portal/internal/paystub/errors"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paystub_service.go -destination=mock/paystub_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor identity.Principal, req CreatePaystubRequest) (PaystubResponse, error)
	// ListFor applies the view projection: admins see every paystub,
	// employees only their own.
	ListFor(ctx context.Context, actor identity.Principal) ([]PaystubResponse, error)
}

type service struct {
	col       *store.Collection[Paystub]
	employees employee.Repository
	authz     identity.Authorizer
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	client store.Client,
	authz identity.Authorizer,
	employees employee.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("paystub.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("paystub.service")
	}
	return &service{
		col:       store.NewCollection[Paystub](client, store.CollectionPaystubs),
		employees: employees,
		authz:     authz,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, actor identity.Principal, req CreatePaystubRequest) (PaystubResponse, error) {
	if err := s.authz.Can(actor, identity.ResourcePaystub, identity.ActionCreate); err != nil {
		return PaystubResponse{}, err
	}
	if _, err := time.Parse("2006-01-02", req.PayDate); err != nil {
		return PaystubResponse{}, paystuberrors.ErrInvalidPayDate
	}
	if _, err := s.employees.Get(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PaystubResponse{}, paystuberrors.ErrEmployeeNotFound
		}
		return PaystubResponse{}, mapStoreError(err)
	}

	deductions := req.Deductions
	if deductions == nil {
		deductions = []Deduction{}
	}
	var deducted float64
	for _, d := range deductions {
		deducted += d.Amount
	}

	stub := Paystub{
		ID:         "p-" + uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Period:     fmt.Sprintf("%s → %s", req.PeriodStart, req.PeriodEnd),
		PayDate:    req.PayDate,
		Gross:      req.Gross,
		Tax:        req.Tax,
		Net:        req.Gross - req.Tax - deducted,
		Deductions: deductions,
		CreatedAt:  s.now().UnixMilli(),
	}
	if err := s.col.Create(ctx, stub.ID, stub); err != nil {
		s.logger.Error("create paystub persist failed", zap.Error(err))
		return PaystubResponse{}, mapStoreError(err)
	}

	s.logger.Info("create paystub success",
		zap.String("paystub_id", stub.ID),
		zap.String("employee_id", stub.EmployeeID),
	)
	return mapToResponse(stub), nil
}

func (s *service) ListFor(ctx context.Context, actor identity.Principal) ([]PaystubResponse, error) {
	var (
		stubs []Paystub
		err   error
	)
	if s.authz.Can(actor, identity.ResourcePaystub, identity.ActionReadAll) == nil {
		stubs, err = s.col.List(ctx, nil)
	} else if s.authz.Can(actor, identity.ResourcePaystub, identity.ActionReadOwn) == nil {
		stubs, err = s.col.List(ctx, store.Filter{"employeeId": actor.ID})
	} else {
		return nil, apperror.ErrForbidden
	}
	if err != nil {
		return nil, mapStoreError(err)
	}

	sort.SliceStable(stubs, func(i, j int) bool {
		return stubs[i].PayDate > stubs[j].PayDate
	})
	return mapToListResponse(stubs), nil
}

func mapToResponse(p Paystub) PaystubResponse {
	return PaystubResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Period:     p.Period,
		PayDate:    p.PayDate,
		Gross:      p.Gross,
		Tax:        p.Tax,
		Net:        p.Net,
		Deductions: p.Deductions,
		CreatedAt:  p.CreatedAt,
	}
}

func mapToListResponse(stubs []Paystub) []PaystubResponse {
	resp := make([]PaystubResponse, len(stubs))
	for i, p := range stubs {
		resp[i] = mapToResponse(p)
	}
	return resp
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrUnavailable) {
		return apperror.Wrap(err, apperror.CodeStoreUnavailable, apperror.ErrStoreUnavailable.Message, http.StatusServiceUnavailable)
	}
	return err
}
