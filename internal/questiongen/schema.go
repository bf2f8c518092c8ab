package questiongen

import "github.com/priyansh/neetdost/internal/llm"

// QuestionsSchema defines the JSON schema for question generation responses:
// an array of question objects with difficulty and type enum-constrained.
var QuestionsSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "A batch of NEET-style multiple-choice practice questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject": map[string]any{
					"type":        "string",
					"description": "The NEET subject, e.g. Physics, Chemistry, Biology",
				},
				"chapter": map[string]any{
					"type":        "string",
					"description": "The chapter this question belongs to",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "The specific topic tested",
				},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{"Easy", "Medium", "Hard"},
				},
				"questionText": map[string]any{
					"type":        "string",
					"description": "The question prompt shown to the student",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Exactly 4 distinct answer choices",
				},
				"correctOptionIndex": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Step-by-step justification of the correct answer",
				},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"MCQ"},
				},
				"source": map[string]any{
					"type": "string",
					"enum": []any{"AI Generated - PYQ Pattern"},
				},
			},
			"required": []any{
				"subject", "chapter", "topic", "difficulty", "questionText",
				"options", "correctOptionIndex", "explanation", "type", "source",
			},
			"additionalProperties": false,
		},
	},
}
