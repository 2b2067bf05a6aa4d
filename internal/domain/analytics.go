package domain

// Persona is a qualitative archetype derived from scores and ratios
type Persona struct {
	Name           string        `json:"persona"`
	Description    string        `json:"description"`
	StabilityScore int           `json:"stabilityScore"`
	Traits         PersonaTraits `json:"traits"`
}

// PersonaTraits grades three habits on their own ladders
type PersonaTraits struct {
	EmergencyFund     string `json:"emergencyFund"`
	DebtManagement    string `json:"debtManagement"`
	SavingsDiscipline string `json:"savingsDiscipline"`
}

// ForecastWarning flags a projected breach of the emergency buffer.
// MonthsUntilCritical is nil when no saving is flowing in to estimate from.
type ForecastWarning struct {
	Type                WarningLevel `json:"type"`
	Message             string       `json:"message"`
	MonthsUntilCritical *int         `json:"monthsUntilCritical,omitempty"`
	Timeline            string       `json:"timeline,omitempty"`
	ProjectedMonths     float64      `json:"projectedMonthsOfExpense"`
}

// Forecast compares current scores with a time-projected profile
type Forecast struct {
	MonthsAhead      int               `json:"monthsAhead"`
	CurrentScores    Scores            `json:"currentScores"`
	ProjectedScores  Scores            `json:"projectedScores"`
	ProjectedProfile FinancialProfile  `json:"projectedData"`
	Warnings         []ForecastWarning `json:"warnings"`
	Changes          []DimensionChange `json:"changes"`
}

// Severity of a detected behavioral pattern
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// BehavioralInsight describes one detected spending pattern
type BehavioralInsight struct {
	Type     InsightType `json:"type"`
	Pattern  string      `json:"pattern"`
	Message  string      `json:"message"`
	Severity Severity    `json:"severity"`
	// ChangePercent is the relative move between the older and recent windows
	ChangePercent float64 `json:"changePercent"`
}

// BehavioralReport is the result of trend detection over history
type BehavioralReport struct {
	Detected bool                `json:"detected"`
	Insights []BehavioralInsight `json:"insights"`
}

// LifeEvent names a stress scenario
type LifeEvent string

const (
	LifeEventMedicalEmergency LifeEvent = "medical_emergency"
	LifeEventJobLoss          LifeEvent = "job_loss"
	LifeEventWeddingExpense   LifeEvent = "wedding_expense"
	LifeEventInflationSpike   LifeEvent = "inflation_spike"
)

// LifeEvents lists every supported scenario
var LifeEvents = []LifeEvent{
	LifeEventMedicalEmergency,
	LifeEventJobLoss,
	LifeEventWeddingExpense,
	LifeEventInflationSpike,
}

// LifeEventResult compares scores before and after a shock
type LifeEventResult struct {
	Event          LifeEvent         `json:"eventType"`
	Name           string            `json:"event"`
	Description    string            `json:"description"`
	CurrentScores  Scores            `json:"currentScores"`
	StressedScores Scores            `json:"stressedScores"`
	StressedData   FinancialProfile  `json:"stressedData"`
	Impact         []DimensionChange `json:"impact"`
}

// InflationImpact describes erosion of purchasing power
type InflationImpact struct {
	CurrentAmount   float64 `json:"currentAmount"`
	Years           float64 `json:"years"`
	InflationRate   float64 `json:"inflationRate"`
	FutureValue     float64 `json:"futureValue"`
	PurchasingPower float64 `json:"purchasingPower"`
	Message         string  `json:"message"`
}

// ScenarioSide is one side of a scenario comparison
type ScenarioSide struct {
	Data   FinancialProfile `json:"data"`
	Scores Scores           `json:"scores"`
	Grade  Grade            `json:"grade"`
}

// ScenarioImprovement is the per-dimension gain between two scenarios
type ScenarioImprovement struct {
	Dimension     Dimension `json:"dimension"`
	Current       float64   `json:"current"`
	Improved      float64   `json:"improved"`
	Gain          float64   `json:"gain"`
	PercentChange float64   `json:"percentChange"`
}

// OverallGain compares the average scores of two scenarios
type OverallGain struct {
	Current  float64 `json:"current"`
	Improved float64 `json:"improved"`
	Gain     float64 `json:"gain"`
}

// ScenarioComparison is the full diff between two profiles
type ScenarioComparison struct {
	Current      ScenarioSide          `json:"current"`
	Improved     ScenarioSide          `json:"improved"`
	Improvements []ScenarioImprovement `json:"improvements"`
	OverallGain  OverallGain           `json:"overallGain"`
}

// ActionType names a single incremental change to a profile
type ActionType string

const (
	ActionIncreaseSavings       ActionType = "increase_savings"
	ActionReduceEMI             ActionType = "reduce_emi"
	ActionIncreaseEmergencyFund ActionType = "increase_emergency_fund"
	ActionIncreaseInsurance     ActionType = "increase_insurance"
	ActionAdjustEquity          ActionType = "adjust_equity"
)

// InsuranceType selects which cover increase_insurance changes
type InsuranceType string

const (
	InsuranceLife   InsuranceType = "life"
	InsuranceHealth InsuranceType = "health"
)

// Action is a hypothetical change whose impact is estimated.
// Months applies to increase_savings (default 1); Percent to adjust_equity;
// InsuranceType to increase_insurance.
type Action struct {
	Type          ActionType    `json:"type"`
	Amount        float64       `json:"amount"`
	Months        float64       `json:"months,omitempty"`
	Percent       float64       `json:"percent,omitempty"`
	InsuranceType InsuranceType `json:"insuranceType,omitempty"`
	Description   string        `json:"description,omitempty"`
}

// ActionImpact is a scenario comparison labelled with the action that produced it
type ActionImpact struct {
	Action string `json:"action"`
	ScenarioComparison
}
