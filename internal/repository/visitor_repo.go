package repository

import (
	"context"
	"time"

	"visitreg/internal/dto"
	"visitreg/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorRepository interface {
	Create(ctx context.Context, v *model.Visitor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Visitor, error)
	List(ctx context.Context) ([]model.Visitor, error)
	Update(ctx context.Context, v *model.Visitor) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, filter dto.HistoryFilter) ([]model.Visitor, error)
}

type visitorRepo struct{ db *gorm.DB }

func NewVisitorRepository(db *gorm.DB) VisitorRepository { return &visitorRepo{db: db} }

func (r *visitorRepo) Create(ctx context.Context, v *model.Visitor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *visitorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Visitor, error) {
	var v model.Visitor
	err := r.db.WithContext(ctx).Preload("RegisteredBy").First(&v, id).Error
	return &v, err
}

func (r *visitorRepo) List(ctx context.Context) ([]model.Visitor, error) {
	var visitors []model.Visitor
	err := r.db.WithContext(ctx).Preload("RegisteredBy").
		Order("created_at DESC").
		Find(&visitors).Error
	return visitors, err
}

func (r *visitorRepo) Update(ctx context.Context, v *model.Visitor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *visitorRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Visitor{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row permanently. There is no soft delete: deleted
// visitors disappear from history and statistics.
func (r *visitorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Visitor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// History applies the optional filters conjunctively and returns the full
// result set newest-first. No pagination — the contract is the whole list.
func (r *visitorRepo) History(ctx context.Context, filter dto.HistoryFilter) ([]model.Visitor, error) {
	q := r.db.WithContext(ctx).Model(&model.Visitor{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StartDate != "" {
		if t, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if filter.EndDate != "" {
		// Inclusive end date: everything before the following midnight.
		if t, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			q = q.Where("created_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR cin ILIKE ?", like, like)
	}

	var visitors []model.Visitor
	err := q.Preload("RegisteredBy").Order("created_at DESC").Find(&visitors).Error
	return visitors, err
}
