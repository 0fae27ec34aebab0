package app

import (
	"hr-portal/internal/auth"
	"hr-portal/internal/employee"
	"hr-portal/internal/identity"
	"hr-portal/internal/leave"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/onboarding"
	"hr-portal/internal/paystub"
	"hr-portal/internal/profilechange"
	"hr-portal/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	client store.Client,
	publisher kafka.Publisher,
	logger *zap.Logger,
) error {
	// --- Policy core ---
	authz, err := identity.NewAuthorizer()
	if err != nil {
		return err
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(client)

	// --- Services ---
	authService := auth.NewService(employeeRepo, authz, logger)
	onboardingService := onboarding.NewService(client, authz, employeeRepo, logger)
	employeeService := employee.NewService(employeeRepo, authz, onboardingService, publisher, logger)
	leaveService := leave.NewService(client, authz, employeeRepo, publisher, logger)
	profileChangeService := profilechange.NewService(client, authz, employeeRepo, publisher, logger)
	paystubService := paystub.NewService(client, authz, employeeRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	profileChangeHandler := profilechange.NewHandler(profileChangeService, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService, logger)
	paystubHandler := paystub.NewHandler(paystubService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, authz)
		leave.RegisterRoutes(api, leaveHandler, authz)
		profilechange.RegisterRoutes(api, profileChangeHandler, authz)
		onboarding.RegisterRoutes(api, onboardingHandler, authz)
		paystub.RegisterRoutes(api, paystubHandler, authz)
	}

	return nil
}
