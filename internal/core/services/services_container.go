package services

import (
	portssvc "github.com/wealthsight/wealth_projection_app/internal/core/ports/services"
	"github.com/wealthsight/wealth_projection_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the amortization calculator first since the projector depends on it
	container.Amortization = NewAmortizationService()

	container.Projection = NewProjectionService(
		container.Amortization,
		WithMaxHorizonYears(cfg.MaxHorizonYears),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AmortizationSvcFacade = (*amortizationService)(nil)
	_ portssvc.ProjectionSvcFacade   = (*projectionService)(nil)
)
