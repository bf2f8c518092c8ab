package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert NEET exam question setter with deep knowledge of the NEET syllabus and previous year question (PYQ) patterns.

Rules:
- Generate multiple-choice questions in the style and difficulty distribution of actual NEET previous year questions.
- Every question must be syllabus-accurate for the given subject, chapter, and topic.
- Provide exactly 4 options per question. Exactly one option is correct; the other three must be plausible distractors reflecting common student mistakes, never random values.
- Options must be distinct. Do not repeat an option with trivial rewording.
- The explanation must justify the correct answer step by step and briefly say why the distractors are wrong.
- Use plain text for all content. Chemical formulas and units in standard notation (e.g. H2SO4, m/s^2).
- Stamp every question with type "MCQ" and source "AI Generated - PYQ Pattern".`

// buildUserMessage constructs the user message embedding the generation
// parameters. Empty chapter/topic lists mean the whole subject is in scope.
func buildUserMessage(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d NEET multiple-choice questions.\n\n", p.Count)
	fmt.Fprintf(&b, "Subject: %s\n", p.Subject)
	fmt.Fprintf(&b, "Chapters: %s\n", orAll(p.Chapters))
	fmt.Fprintf(&b, "Topics: %s\n", orAll(p.Topics))
	fmt.Fprintf(&b, "Difficulty: %s\n", p.Difficulty)

	b.WriteString("\nSpread the questions across the listed chapters and topics. ")
	b.WriteString("Fill in each question's subject, chapter, and topic fields with the specific chapter and topic it tests.")

	return b.String()
}

// orAll joins values for the prompt, or "All (full syllabus)" when empty.
func orAll(values []string) string {
	if len(values) == 0 {
		return "All (full syllabus)"
	}
	return strings.Join(values, ", ")
}
