package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type tokenPurger interface {
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// MaintenanceService reclaims token rows long past expiry. Expiry and
// revocation never delete rows at request time; this is the only path that does.
type MaintenanceService struct {
	tokens    tokenPurger
	logger    *zap.Logger
	retainFor time.Duration
	now       func() time.Time
}

// NewMaintenanceService constructs a MaintenanceService. Rows are retained for
// retainFor after expiry before being purged, preserving an audit window.
func NewMaintenanceService(tokens tokenPurger, logger *zap.Logger, retainFor time.Duration) *MaintenanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceService{
		tokens:    tokens,
		logger:    logger,
		retainFor: retainFor,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// PurgeExpiredTokens deletes token rows that expired before the retention cutoff.
func (s *MaintenanceService) PurgeExpiredTokens(ctx context.Context) error {
	cutoff := s.now().Add(-s.retainFor)
	purged, err := s.tokens.PurgeExpired(ctx, cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		s.logger.Info("purged expired tokens", zap.Int64("rows", purged), zap.Time("cutoff", cutoff))
	}
	return nil
}
