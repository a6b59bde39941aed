package services

import (
	"context"

	"github.com/wealthsight/wealth_projection_app/internal/core/domain"
)

// ProjectionSvcFacade defines the net worth / cashflow projection operations.
type ProjectionSvcFacade interface {
	// Project produces a time series of asset value, liability balance, net
	// worth and cashflow across the requested horizon. Returns
	// apperrors.ErrInvalidHorizon when horizonYears is not positive or
	// exceeds the configured maximum; an empty snapshot is valid and yields
	// an all-zero projection.
	Project(ctx context.Context, snapshot domain.ProjectionSnapshot, horizonYears int, granularity domain.Granularity) (*domain.ProjectionResult, error)
}
