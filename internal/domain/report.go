package domain

import "github.com/google/uuid"

// ScoreReport is the core scoring output for one profile
type ScoreReport struct {
	Scores   Scores    `json:"scores"`
	Grade    Grade     `json:"grade"`
	Insights []Insight `json:"insights"`
}

// SnapshotResult is returned after a profile snapshot is stored.
// NewMilestones and NewBadges hold only what this snapshot added.
type SnapshotResult struct {
	Data          *FinancialData `json:"data"`
	Scores        Scores         `json:"scores"`
	Grade         Grade          `json:"grade"`
	NewMilestones []Milestone    `json:"newMilestones"`
	NewBadges     []Badge        `json:"newBadges"`
}

// RiskAnalysis bundles every analysis of a stored profile
type RiskAnalysis struct {
	UserID        uuid.UUID        `json:"userId"`
	Profile       FinancialProfile `json:"profile"`
	Scores        Scores           `json:"scores"`
	Grade         Grade            `json:"grade"`
	Insights      []Insight        `json:"insights"`
	SmartInsights []SmartInsight   `json:"smartInsights"`
	Persona       Persona          `json:"persona"`
	Warnings      []EarlyWarning   `json:"warnings"`
	Badges        []Badge          `json:"badges"`
	Milestones    []Milestone      `json:"milestones"`
	Behavior      BehavioralReport `json:"behavior"`
	Forecast      Forecast         `json:"forecast"`
}
