package memo

import (
	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

// maxSectionLen bounds each free-text memo section.
const maxSectionLen = 50_000

// SaveMemoInput holds the parameters for saving a memo. Every save submits
// the full six-section content; the store snapshots it as the next version.
type SaveMemoInput struct {
	DealID        uuid.UUID
	Sections      domain.MemoSections
	ChangeSummary *string
}

// Validate checks all fields and collects all errors.
func (i SaveMemoInput) Validate() error {
	var errs []domain.FieldError

	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
	}
	if i.ChangeSummary != nil && len(*i.ChangeSummary) > 500 {
		errs = append(errs, domain.FieldError{Field: "change_summary", Message: "max 500 characters"})
	}

	sections := map[string]*string{
		"summary":        i.Sections.Summary,
		"market":         i.Sections.Market,
		"product":        i.Sections.Product,
		"traction":       i.Sections.Traction,
		"risks":          i.Sections.Risks,
		"open_questions": i.Sections.OpenQuestions,
	}
	for field, value := range sections {
		if value != nil && len(*value) > maxSectionLen {
			errs = append(errs, domain.FieldError{Field: field, Message: "section too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
