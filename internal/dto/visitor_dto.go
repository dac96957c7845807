package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateVisitorRequest struct {
	Name   string `json:"name"   validate:"required,min=2,max=150"`
	CIN    string `json:"cin"    validate:"required,min=3,max=32"`
	Phone  string `json:"phone"  validate:"required,min=6,max=30"`
	Reason string `json:"reason" validate:"required,min=2,max=255"`
}

// UpdateVisitorRequest is a full-field replace (admin only).
type UpdateVisitorRequest struct {
	Name   string `json:"name"   validate:"required,min=2,max=150"`
	CIN    string `json:"cin"    validate:"required,min=3,max=32"`
	Phone  string `json:"phone"  validate:"required,min=6,max=30"`
	Reason string `json:"reason" validate:"required,min=2,max=255"`
}

// UpdateStatusRequest carries the new presence status. Membership in the
// enumerated set is checked by the service, not by a validator tag, so the
// caller gets the same error shape whether the value is missing or unknown.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HistoryFilter holds the optional, conjunctive query params of
// GET /visitor-history. Dates are inclusive YYYY-MM-DD bounds on created_at.
type HistoryFilter struct {
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Search    string `form:"search"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RegisteredByRef is the owning user reference embedded in visitor responses.
type RegisteredByRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VisitorResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	CIN          string           `json:"cin"`
	Phone        string           `json:"phone"`
	Reason       string           `json:"reason"`
	Status       string           `json:"status"`
	RegisteredBy *RegisteredByRef `json:"registered_by,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
