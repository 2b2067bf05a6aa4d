package domain

import "time"

// MilestoneType is the stable key of a one-time achievement
type MilestoneType string

const (
	MilestoneEmergencyFund6M   MilestoneType = "emergency_fund_6m"
	MilestoneEmergencyFund9M   MilestoneType = "emergency_fund_9m"
	MilestoneSavingsRate20     MilestoneType = "savings_rate_20"
	MilestoneSavingsRate30     MilestoneType = "savings_rate_30"
	MilestoneLowDebt           MilestoneType = "low_debt"
	MilestoneInsuranceAdequate MilestoneType = "insurance_adequate"
)

// Milestone is unlocked once per type and never repeated
type Milestone struct {
	Type        MilestoneType `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	UnlockedAt  time.Time     `json:"unlockedAt"`
}

// HasMilestone reports whether milestones already contains the given type
func HasMilestone(milestones []Milestone, t MilestoneType) bool {
	for _, m := range milestones {
		if m.Type == t {
			return true
		}
	}
	return false
}

// Badge is recomputed from current scores; stored badges are deduped by name
type Badge struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// HasBadge reports whether badges already contains the given name
func HasBadge(badges []Badge, name string) bool {
	for _, b := range badges {
		if b.Name == name {
			return true
		}
	}
	return false
}
