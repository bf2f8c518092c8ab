package questiongen

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Fixed values stamped on every generated question.
const (
	// QuestionType marks every record as multiple-choice.
	QuestionType = "MCQ"

	// QuestionSource labels where the question came from.
	QuestionSource = "AI Generated - PYQ Pattern"
)

// Difficulty is the question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a generated multiple-choice question. IDs are assigned by
// the caller; questions are never mutated after generation.
type Question struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Topic   string `json:"topic"`

	Difficulty Difficulty `json:"difficulty"`

	// QuestionText is the prompt shown to the student.
	QuestionText string `json:"questionText"`

	// Options holds exactly 4 distinct answer choices.
	Options []string `json:"options"`

	// CorrectOptionIndex is the index of the right answer in Options.
	CorrectOptionIndex int `json:"correctOptionIndex"`

	// Explanation is the worked solution shown after answering.
	Explanation string `json:"explanation"`

	// Type is always "MCQ".
	Type string `json:"type"`

	// Source is always "AI Generated - PYQ Pattern".
	Source string `json:"source"`
}

// Params describes the question batch to generate. Values are embedded in
// the prompt verbatim; the caller is trusted.
type Params struct {
	Subject    string
	Chapters   []string
	Topics     []string
	Difficulty Difficulty

	// Count is the number of questions requested. Must be positive.
	Count int
}
