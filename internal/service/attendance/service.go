package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Service is the read side over the attendance store, consumed by the HTTP
// layer.
type Service interface {
	// List returns attendance records matching the filter plus the total
	// count for pagination. Results are served from a TTL cache that the
	// batch purges after every run.
	List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error)

	// Snapshot summarises the latest processed date for the dashboard.
	Snapshot(ctx context.Context) (attendance.Snapshot, error)

	// MonthlyMetrics returns per-day counters for one calendar month.
	MonthlyMetrics(ctx context.Context, year int, month time.Month) ([]attendance.DayMetrics, error)

	// Invalidate drops every cached listing. Implements Invalidator.
	Invalidate()
}

type listPage struct {
	records []attendance.Record
	total   int64
}

type service struct {
	repo  attendance.Repository
	cache *expirable.LRU[string, listPage]
}

const listCacheSize = 256

func NewService(repo attendance.Repository, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, listPage](listCacheSize, nil, cacheTTL),
	}
}

func (s *service) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	key := cacheKey(filter)
	if page, ok := s.cache.Get(key); ok {
		return page.records, page.total, nil
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	s.cache.Add(key, listPage{records: records, total: total})
	return records, total, nil
}

func (s *service) Snapshot(ctx context.Context) (attendance.Snapshot, error) {
	latest, err := s.repo.LatestDate(ctx)
	if err != nil {
		return attendance.Snapshot{}, err
	}
	return s.repo.SnapshotForDate(ctx, latest)
}

func (s *service) MonthlyMetrics(ctx context.Context, year int, month time.Month) ([]attendance.DayMetrics, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.repo.DailyMetrics(ctx, from, to)
}

func (s *service) Invalidate() {
	s.cache.Purge()
}

func cacheKey(f attendance.Filter) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%t|%t|%t|%d|%d",
		strOrEmpty(f.EmployeeID),
		strOrEmpty(f.EmployeeName),
		dateOrEmpty(f.Date),
		dateOrEmpty(f.StartDate),
		dateOrEmpty(f.EndDate),
		statusOrEmpty(f.Status),
		f.LateEntryNotNull,
		f.EarlyExitNotNull,
		f.OvertimeNotNull,
		f.Page,
		f.Limit,
	)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func statusOrEmpty(s *attendance.Status) string {
	if s == nil {
		return ""
	}
	return string(*s)
}
