package pipeline

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

// CreateDealInput holds the parameters for creating a deal.
type CreateDealInput struct {
	Name       string
	Owner      string
	CompanyURL *string
	Round      *string
	CheckSize  *float64
	Stage      domain.Stage
	Status     domain.DealStatus
}

// Validate checks all fields and collects all errors.
func (i CreateDealInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if strings.TrimSpace(i.Owner) == "" {
		errs = append(errs, domain.FieldError{Field: "owner", Message: "required"})
	}
	if i.Stage != "" && !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown stage"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.CheckSize != nil && *i.CheckSize < 0 {
		errs = append(errs, domain.FieldError{Field: "check_size", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDealInput holds partial non-stage field updates for a deal.
type UpdateDealInput struct {
	DealID uuid.UUID
	Fields domain.DealUpdate
}

// Validate checks all fields and collects all errors.
func (i UpdateDealInput) Validate() error {
	var errs []domain.FieldError

	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
	}
	if i.Fields.Name != nil && strings.TrimSpace(*i.Fields.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Fields.Owner != nil && strings.TrimSpace(*i.Fields.Owner) == "" {
		errs = append(errs, domain.FieldError{Field: "owner", Message: "must not be empty"})
	}
	if i.Fields.Status != nil && !i.Fields.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Fields.CheckSize != nil && *i.Fields.CheckSize < 0 {
		errs = append(errs, domain.FieldError{Field: "check_size", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveStageInput holds the parameters for a stage transition.
type MoveStageInput struct {
	DealID uuid.UUID
	Stage  domain.Stage
}

// Validate checks all fields and collects all errors.
func (i MoveStageInput) Validate() error {
	var errs []domain.FieldError

	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
	}
	if !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown stage"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds skip/limit pagination parameters.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
