package domain

// InsightType classifies an insight for display
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// Insight is a qualitative observation about the profile
type Insight struct {
	Type  InsightType `json:"type"`
	Title string      `json:"title"`
	Text  string      `json:"text"`
}

// Priority ranks smart insights and warnings
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// SmartInsight explains a weak dimension with numbers and a concrete fix
type SmartInsight struct {
	Dimension   Dimension `json:"dimension"`
	Score       float64   `json:"score"`
	Explanation string    `json:"explanation"`
	Fix         string    `json:"fix"`
	Priority    Priority  `json:"priority"`
}

// WarningLevel is the severity of an early warning
type WarningLevel string

const (
	WarningCritical WarningLevel = "critical"
	WarningWarning  WarningLevel = "warning"
)

// EarlyWarning flags a threshold breach with a recommended action.
// Target is the rupee figure the action refers to.
type EarlyWarning struct {
	Level    WarningLevel `json:"level"`
	Category string       `json:"category"`
	Message  string       `json:"message"`
	Action   string       `json:"action"`
	Target   float64      `json:"target"`
}
