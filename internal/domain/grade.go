package domain

// GradeLetter is the overall A–E risk grade
type GradeLetter string

const (
	GradeA GradeLetter = "A"
	GradeB GradeLetter = "B"
	GradeC GradeLetter = "C"
	GradeD GradeLetter = "D"
	GradeE GradeLetter = "E"
)

// Grade is the overall classification derived from the average score
type Grade struct {
	Grade GradeLetter `json:"grade"`
	Label string      `json:"label"`
	Color string      `json:"color"`
}

// GradeBand maps a minimum average score to a grade.
// Bands are ordered from best to worst; the last band has MinAverage 0
// and acts as the fallback.
type GradeBand struct {
	MinAverage float64
	Grade      Grade
}

// GradeBands is the fixed grade table
var GradeBands = []GradeBand{
	{MinAverage: 80, Grade: Grade{Grade: GradeA, Label: "Low risk", Color: "#22c55e"}},
	{MinAverage: 65, Grade: Grade{Grade: GradeB, Label: "Moderate risk", Color: "#84cc16"}},
	{MinAverage: 50, Grade: Grade{Grade: GradeC, Label: "Elevated risk", Color: "#eab308"}},
	{MinAverage: 35, Grade: Grade{Grade: GradeD, Label: "High risk", Color: "#f97316"}},
	{MinAverage: 0, Grade: Grade{Grade: GradeE, Label: "Critical risk", Color: "#ef4444"}},
}
