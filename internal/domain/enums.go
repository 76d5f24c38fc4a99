package domain

// Stage is one step of the fixed deal pipeline. Stages form an ordered
// funnel for display purposes, but transitions between any two stages are
// allowed (deals get passed and revived, or re-screened).
type Stage string

const (
	StageSourced   Stage = "Sourced"
	StageScreen    Stage = "Screen"
	StageDiligence Stage = "Diligence"
	StageIC        Stage = "IC"
	StageInvested  Stage = "Invested"
	StagePassed    Stage = "Passed"
)

// Stages returns every pipeline stage in funnel order.
func Stages() []Stage {
	return []Stage{StageSourced, StageScreen, StageDiligence, StageIC, StageInvested, StagePassed}
}

func (s Stage) String() string { return string(s) }

func (s Stage) IsValid() bool {
	switch s {
	case StageSourced, StageScreen, StageDiligence, StageIC, StageInvested, StagePassed:
		return true
	}
	return false
}

// DealStatus is the lifecycle status of a deal. Status and stage are
// independent axes: an archived deal keeps whatever stage it was in.
type DealStatus string

const (
	DealStatusActive   DealStatus = "active"
	DealStatusInactive DealStatus = "inactive"
	DealStatusArchived DealStatus = "archived"
)

func (s DealStatus) String() string { return string(s) }

func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusActive, DealStatusInactive, DealStatusArchived:
		return true
	}
	return false
}

// ActivityType is the kind of change recorded in the activity log.
type ActivityType string

const (
	ActivityTypeStageChange ActivityType = "stage_change"
	ActivityTypeFieldUpdate ActivityType = "field_update"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeStageChange, ActivityTypeFieldUpdate:
		return true
	}
	return false
}
