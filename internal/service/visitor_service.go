package service

import (
	"context"
	"errors"

	"visitreg/internal/dto"
	"visitreg/internal/model"
	"visitreg/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorService interface {
	Create(ctx context.Context, identity *model.User, req dto.CreateVisitorRequest) (*dto.VisitorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VisitorResponse, error)
	List(ctx context.Context) ([]dto.VisitorResponse, error)
	Update(ctx context.Context, identity *model.User, id uuid.UUID, req dto.UpdateVisitorRequest) (*dto.VisitorResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.VisitorResponse, error)
	Delete(ctx context.Context, identity *model.User, id uuid.UUID) error
}

type visitorService struct {
	repo repository.VisitorRepository
}

func NewVisitorService(repo repository.VisitorRepository) VisitorService {
	return &visitorService{repo: repo}
}

// Create registers a visitor on behalf of the authenticated identity.
// New visitors always start as Pending.
func (s *visitorService) Create(ctx context.Context, identity *model.User, req dto.CreateVisitorRequest) (*dto.VisitorResponse, error) {
	v := &model.Visitor{
		Name:           req.Name,
		CIN:            req.CIN,
		Phone:          req.Phone,
		Reason:         req.Reason,
		Status:         model.StatusPending,
		RegisteredByID: identity.ID,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCIN
		}
		return nil, err
	}
	v.RegisteredBy = identity
	resp := toVisitorResponse(v)
	return &resp, nil
}

func (s *visitorService) Get(ctx context.Context, id uuid.UUID) (*dto.VisitorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toVisitorResponse(v)
	return &resp, nil
}

func (s *visitorService) List(ctx context.Context) ([]dto.VisitorResponse, error) {
	visitors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toVisitorResponses(visitors), nil
}

// Update is a full-field replace, admins only. The route is already gated by
// RequireRole; the check here keeps the rule with the operation so a future
// caller cannot bypass it.
func (s *visitorService) Update(ctx context.Context, identity *model.User, id uuid.UUID, req dto.UpdateVisitorRequest) (*dto.VisitorResponse, error) {
	if identity.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	v.Name = req.Name
	v.CIN = req.CIN
	v.Phone = req.Phone
	v.Reason = req.Reason

	if err := s.repo.Update(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCIN
		}
		return nil, err
	}
	resp := toVisitorResponse(v)
	return &resp, nil
}

// UpdateStatus accepts any of the three enumerated values from any
// authenticated identity, in any order — out-of-order transitions (e.g.
// Pending → Exited) are allowed so staff can correct mistakes.
func (s *visitorService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.VisitorResponse, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete permanently removes the record, admins only.
func (s *visitorService) Delete(ctx context.Context, identity *model.User, id uuid.UUID) error {
	if identity.Role != model.RoleAdmin {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func toVisitorResponse(v *model.Visitor) dto.VisitorResponse {
	resp := dto.VisitorResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		CIN:       v.CIN,
		Phone:     v.Phone,
		Reason:    v.Reason,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.RegisteredBy != nil {
		resp.RegisteredBy = &dto.RegisteredByRef{
			ID:   v.RegisteredBy.ID.String(),
			Name: v.RegisteredBy.Name,
		}
	}
	return resp
}

func toVisitorResponses(visitors []model.Visitor) []dto.VisitorResponse {
	resp := make([]dto.VisitorResponse, len(visitors))
	for i := range visitors {
		resp[i] = toVisitorResponse(&visitors[i])
	}
	return resp
}
