package repository

import (
	"context"

	"visitreg/internal/dto"
	"visitreg/internal/model"

	"gorm.io/gorm"
)

// StatsRepository is read-only aggregation over the visitors table.
type StatsRepository interface {
	TotalCount(ctx context.Context) (int64, error)
	CountToday(ctx context.Context) (int64, error)
	CountThisMonth(ctx context.Context) (int64, error)
	MonthlyTrend(ctx context.Context) ([]dto.MonthCount, error)
	MostFrequentVisitors(ctx context.Context, limit int) ([]dto.FrequentVisitor, error)
	VisitsPerAgent(ctx context.Context) ([]dto.AgentCount, error)
}

type statsRepo struct{ db *gorm.DB }

func NewStatsRepository(db *gorm.DB) StatsRepository { return &statsRepo{db: db} }

func (r *statsRepo) TotalCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).Count(&n).Error
	return n, err
}

func (r *statsRepo) CountToday(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Where("DATE(created_at) = CURRENT_DATE").
		Count(&n).Error
	return n, err
}

func (r *statsRepo) CountThisMonth(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Where("date_trunc('month', created_at) = date_trunc('month', CURRENT_DATE)").
		Count(&n).Error
	return n, err
}

// MonthlyTrend groups all-time registrations by calendar month, chronological.
func (r *statsRepo) MonthlyTrend(ctx context.Context) ([]dto.MonthCount, error) {
	var rows []dto.MonthCount
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Select("to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*) AS count").
		Group("1").
		Order("1").
		Scan(&rows).Error
	return rows, err
}

// MostFrequentVisitors ranks CINs by registration count. With the unique index
// on cin this degenerates to one visit per person unless records were deleted
// and re-created, which is exactly the documented behavior.
func (r *statsRepo) MostFrequentVisitors(ctx context.Context, limit int) ([]dto.FrequentVisitor, error) {
	var rows []dto.FrequentVisitor
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Select("cin, MAX(name) AS name, COUNT(*) AS visits").
		Group("cin").
		Order("visits DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// VisitsPerAgent counts visitors per registering user, agents only.
func (r *statsRepo) VisitsPerAgent(ctx context.Context) ([]dto.AgentCount, error) {
	var rows []dto.AgentCount
	err := r.db.WithContext(ctx).Model(&model.Visitor{}).
		Select("users.id::text AS agent_id, users.name AS agent_name, COUNT(visitors.id) AS visits").
		Joins("JOIN users ON users.id = visitors.registered_by_id").
		Where("users.role = ?", model.RoleAgent).
		Group("users.id, users.name").
		Order("visits DESC").
		Scan(&rows).Error
	return rows, err
}
