package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deal represents one investment opportunity moving through the pipeline.
// The stage field is mutated only through the pipeline service's MoveStage;
// all other fields change through plain field updates.
type Deal struct {
	ID         uuid.UUID
	Name       string
	Owner      string
	CompanyURL *string
	Round      *string
	CheckSize  *float64
	Stage      Stage
	Status     DealStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DealUpdate holds optional non-stage field changes for a deal.
// Nil pointers mean "leave unchanged". Stage deliberately has no field
// here: stage changes go through the pipeline service's MoveStage only.
type DealUpdate struct {
	Name       *string
	Owner      *string
	CompanyURL *string
	Round      *string
	CheckSize  *float64
	Status     *DealStatus
}

// Activity is one immutable audit entry describing a change on a deal.
// Activities are append-only: once written they are never updated or
// deleted, and they are ordered by creation time within a deal.
type Activity struct {
	ID          uuid.UUID
	DealID      uuid.UUID
	UserID      uuid.UUID
	Type        ActivityType
	Description string
	OldValue    *string
	NewValue    *string
	CreatedAt   time.Time
}
