package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemoSections holds the six free-text sections of an IC memo.
type MemoSections struct {
	Summary       *string
	Market        *string
	Product       *string
	Traction      *string
	Risks         *string
	OpenQuestions *string
}

// ICMemo is the mutable head of a deal's memo: the latest saved sections
// plus the pointer to the latest version number. At most one head exists
// per deal. CurrentVersion always equals the highest version number among
// the deal's ICMemoVersion records.
type ICMemo struct {
	ID             uuid.UUID
	DealID         uuid.UUID
	CreatedBy      uuid.UUID
	LastUpdatedBy  uuid.UUID
	CurrentVersion int
	Sections       MemoSections
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ICMemoVersion is a complete, immutable snapshot of memo content at one
// point in time. Version numbers are dense per deal: 1..CurrentVersion with
// no gaps and no duplicates. Each snapshot holds the full content submitted
// at that save, never a diff.
type ICMemoVersion struct {
	ID            uuid.UUID
	MemoID        uuid.UUID
	DealID        uuid.UUID
	VersionNumber int
	CreatedBy     uuid.UUID
	Sections      MemoSections
	ChangeSummary *string
	CreatedAt     time.Time
}
