package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purgerMock struct {
	purged int64
	err    error
	before time.Time
	calls  int
}

func (m *purgerMock) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	m.calls++
	m.before = before
	return m.purged, m.err
}

func TestPurgeExpiredTokensUsesRetentionCutoff(t *testing.T) {
	purger := &purgerMock{purged: 7}
	svc := NewMaintenanceService(purger, nil, 30*24*time.Hour)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	err := svc.PurgeExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, purger.calls)
	assert.Equal(t, now.Add(-30*24*time.Hour), purger.before)
}

func TestPurgeExpiredTokensPropagatesError(t *testing.T) {
	purger := &purgerMock{err: errors.New("db down")}
	svc := NewMaintenanceService(purger, nil, time.Hour)

	err := svc.PurgeExpiredTokens(context.Background())
	assert.Error(t, err)
}
