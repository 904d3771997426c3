package stats

import (
	"fmt"

	"primers/internal/domain"
)

// Service wraps a result store with aggregation.
type Service struct {
	store domain.ResultStore
}

// New returns a stats service backed by the given store.
func New(s domain.ResultStore) *Service { return &Service{store: s} }

// Record stores a finished game.
func (s *Service) Record(r domain.Result) error {
	if r.ID == "" {
		return fmt.Errorf("record result: missing game id")
	}
	return s.store.SaveResult(r)
}

// Summarize aggregates every stored game.
func (s *Service) Summarize() (domain.Summary, error) {
	results, err := s.store.ListResults()
	if err != nil {
		return domain.Summary{}, err
	}
	return Summarize(results), nil
}

// Reset drops the stored history.
func (s *Service) Reset() error { return s.store.ClearResults() }

// Summarize aggregates results. AverageAttempts and BestAttempts consider
// won games only.
func Summarize(results []domain.Result) domain.Summary {
	var sum domain.Summary
	var wonAttempts int
	for _, r := range results {
		sum.Played++
		sum.InvalidInputs += r.Invalid
		if !r.Won {
			sum.Lost++
			continue
		}
		sum.Won++
		wonAttempts += r.Attempts
		if sum.BestAttempts == 0 || r.Attempts < sum.BestAttempts {
			sum.BestAttempts = r.Attempts
		}
	}
	if sum.Won > 0 {
		sum.AverageAttempts = float64(wonAttempts) / float64(sum.Won)
	}
	return sum
}

// Compile-time assertion that Service implements domain.StatsService.
var _ domain.StatsService = (*Service)(nil)
