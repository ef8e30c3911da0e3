package statistics

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// Aggregate folds day/action/target groups into per-day buckets and the
// count-weighted average impact of influence changes. Buckets are sorted by
// date ascending; a day with only unrelated groups still gets a bucket.
func Aggregate(groups []domain.AuditGroup) domain.AggregatedStatistics {
	byDay := make(map[time.Time]*domain.StatisticsBucket)

	var (
		weightedSum float64
		weight      int
	)

	for _, g := range groups {
		day := domain.StartOfDayUTC(g.Day)
		b, ok := byDay[day]
		if !ok {
			b = &domain.StatisticsBucket{Date: day}
			byDay[day] = b
		}

		switch {
		case g.Action == domain.AuditActionCreate && g.Target == domain.AuditTargetGeneration:
			b.FuturesGenerated += g.Count
		case g.Action == domain.AuditActionCreate && g.Target == domain.AuditTargetUserHabit:
			b.HabitsCreated += g.Count
		case isInfluenceChange(g):
			b.HabitsInfluenceChanged += g.Count
			if g.AvgImpact != nil {
				weightedSum += *g.AvgImpact * float64(g.Count)
				weight += g.Count
			}
		}
	}

	stats := make([]domain.StatisticsBucket, 0, len(byDay))
	for _, b := range byDay {
		stats = append(stats, *b)
	}
	slices.SortFunc(stats, func(a, b domain.StatisticsBucket) int {
		return a.Date.Compare(b.Date)
	})

	var avg float64
	if weight > 0 {
		avg = weightedSum / float64(weight)
	}

	return domain.AggregatedStatistics{
		AverageInfluence: avg,
		Stats:            stats,
	}
}

func isInfluenceChange(g domain.AuditGroup) bool {
	return g.Action == domain.AuditActionUpdate &&
		(g.Target == domain.AuditTargetInfluence || g.Target == domain.AuditTargetUserHabit)
}

// Aggregate runs the grouped query and folds its result. If ctx is done
// once the query returns, the context error is returned instead of a
// partial answer.
func (s *Service) Aggregate(ctx context.Context, q domain.AuditQuery) (domain.AggregatedStatistics, error) {
	start := time.Now()

	groups, err := s.store.AggregateByDay(ctx, q)
	s.metrics.observe("aggregate", start, err)
	if err != nil {
		return domain.AggregatedStatistics{}, fmt.Errorf("aggregate audit records: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.AggregatedStatistics{}, err
	}

	return Aggregate(groups), nil
}
