package models

import (
	"testing"
)

func TestQuizValidate(t *testing.T) {
	testCases := []struct {
		name      string
		questions []Question
		valid     bool
	}{
		{"no questions", nil, true},
		{"answer in range", []Question{{Options: []string{"a", "b"}, CorrectAnswer: 1}}, true},
		{"no options", []Question{{Options: nil, CorrectAnswer: 0}}, false},
		{"answer past range", []Question{{Options: []string{"a", "b"}, CorrectAnswer: 2}}, false},
		{"negative answer", []Question{{Options: []string{"a", "b"}, CorrectAnswer: -1}}, false},
		{"one bad question fails the quiz", []Question{
			{Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Options: []string{"a"}, CorrectAnswer: 3},
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quiz := &Quiz{Title: "t", Questions: tc.questions}
			if got := quiz.Validate(); got != tc.valid {
				t.Errorf("Validate() = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, category := range []string{CategoryFrontend, CategoryBackend, CategoryCore, CategoryAIML} {
		if !ValidCategory(category) {
			t.Errorf("expected %q to be valid", category)
		}
	}
	if ValidCategory("devops") {
		t.Error("unexpected category accepted")
	}
}

func TestValidTheme(t *testing.T) {
	for _, theme := range []string{"light", "dark", "system"} {
		if !ValidTheme(theme) {
			t.Errorf("expected %q to be valid", theme)
		}
	}
	if ValidTheme("solarized") {
		t.Error("unexpected theme accepted")
	}
}
