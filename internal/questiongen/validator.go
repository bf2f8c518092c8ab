package questiongen

import "fmt"

// validateQuestion checks a single parsed record. The model is asked for
// well-formed output via the schema, but index bounds and option
// distinctness cannot be expressed there, so they are enforced here.
func validateQuestion(q Question) error {
	if q.QuestionText == "" {
		return fmt.Errorf("questionText is empty")
	}
	if q.Explanation == "" {
		return fmt.Errorf("explanation is empty")
	}
	if q.Subject == "" {
		return fmt.Errorf("subject is empty")
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("difficulty %q is not one of Easy, Medium, Hard", q.Difficulty)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(q.Options))
	}

	seen := make(map[string]bool, OptionCount)
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
	}

	if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
		return fmt.Errorf("correctOptionIndex %d out of range [0,%d)", q.CorrectOptionIndex, len(q.Options))
	}

	return nil
}
