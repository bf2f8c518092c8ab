package questiongen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_AllParams(t *testing.T) {
	p := Params{
		Subject:    "Chemistry",
		Chapters:   []string{"Chemical Bonding", "Thermodynamics"},
		Topics:     []string{"Hybridisation", "Hess's Law"},
		Difficulty: DifficultyMedium,
		Count:      10,
	}

	msg := buildUserMessage(p)

	for _, want := range []string{
		"Generate exactly 10 NEET multiple-choice questions.",
		"Subject: Chemistry",
		"Chapters: Chemical Bonding, Thermodynamics",
		"Topics: Hybridisation, Hess's Law",
		"Difficulty: Medium",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in prompt:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_EmptyScopeMeansFullSyllabus(t *testing.T) {
	p := Params{
		Subject:    "Physics",
		Difficulty: DifficultyHard,
		Count:      5,
	}

	msg := buildUserMessage(p)

	if !strings.Contains(msg, "Chapters: All (full syllabus)") {
		t.Errorf("expected full-syllabus chapters, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Topics: All (full syllabus)") {
		t.Errorf("expected full-syllabus topics, got:\n%s", msg)
	}
}

func TestSystemPrompt_StatesFixedStamps(t *testing.T) {
	if !strings.Contains(systemPrompt, `"MCQ"`) {
		t.Error("system prompt should pin the question type")
	}
	if !strings.Contains(systemPrompt, `"AI Generated - PYQ Pattern"`) {
		t.Error("system prompt should pin the question source")
	}
}
