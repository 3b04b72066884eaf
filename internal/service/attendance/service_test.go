package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	attendance.Repository
	listCalls int
	records   []attendance.Record
}

func (r *countingRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	r.listCalls++
	return r.records, int64(len(r.records)), nil
}

func TestListServesSecondCallFromCache(t *testing.T) {
	repo := &countingRepo{records: []attendance.Record{
		{ID: "rec-1", EmployeeID: "EMP001", Status: attendance.StatusPresent},
	}}
	svc := NewService(repo, time.Minute)

	filter := attendance.Filter{Page: 1, Limit: 20}

	records, total, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)

	_, _, err = svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListDistinctFiltersMissTheCache(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo, time.Minute)

	empID := "EMP001"
	_, _, err := svc.List(context.Background(), attendance.Filter{Page: 1, Limit: 20})
	require.NoError(t, err)
	_, _, err = svc.List(context.Background(), attendance.Filter{EmployeeID: &empID, Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls)
}

func TestInvalidatePurgesCachedListings(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo, time.Minute)

	filter := attendance.Filter{Page: 1, Limit: 20}
	_, _, err := svc.List(context.Background(), filter)
	require.NoError(t, err)

	svc.Invalidate()

	_, _, err = svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}
