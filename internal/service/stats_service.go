package service

import (
	"context"

	"visitreg/internal/dto"
	"visitreg/internal/repository"
)

// frequentVisitorsLimit caps the most-frequent ranking to keep the dashboard
// payload small; every other aggregate is unbounded by contract.
const frequentVisitorsLimit = 10

// StatsService assembles the dashboard aggregates and the filtered history.
// Read-only: it never mutates the visitors table.
type StatsService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	History(ctx context.Context, filter dto.HistoryFilter) ([]dto.VisitorResponse, error)
}

type statsService struct {
	stats    repository.StatsRepository
	visitors repository.VisitorRepository
}

func NewStatsService(stats repository.StatsRepository, visitors repository.VisitorRepository) StatsService {
	return &statsService{stats: stats, visitors: visitors}
}

func (s *statsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.stats.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.stats.CountToday(ctx)
	if err != nil {
		return nil, err
	}
	month, err := s.stats.CountThisMonth(ctx)
	if err != nil {
		return nil, err
	}
	trend, err := s.stats.MonthlyTrend(ctx)
	if err != nil {
		return nil, err
	}
	frequent, err := s.stats.MostFrequentVisitors(ctx, frequentVisitorsLimit)
	if err != nil {
		return nil, err
	}
	perAgent, err := s.stats.VisitsPerAgent(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalVisitors:    total,
		Today:            today,
		ThisMonth:        month,
		MonthlyTrend:     trend,
		FrequentVisitors: frequent,
		VisitsPerAgent:   perAgent,
	}, nil
}

func (s *statsService) History(ctx context.Context, filter dto.HistoryFilter) ([]dto.VisitorResponse, error) {
	visitors, err := s.visitors.History(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toVisitorResponses(visitors), nil
}
