package seed

import (
	"testing"
)

func TestStarterDataset(t *testing.T) {
	subjects := starterSubjects()
	if len(subjects) == 0 {
		t.Fatal("starter dataset is empty")
	}

	for _, subject := range subjects {
		if subject.title == "" || subject.category == "" {
			t.Errorf("subject missing title or category: %+v", subject.title)
		}
		if len(subject.units) == 0 {
			t.Errorf("subject %q has no units", subject.title)
		}
		for _, unit := range subject.units {
			if unit.title == "" {
				t.Errorf("unit under %q missing title", subject.title)
			}
			if unit.quiz == nil {
				continue
			}
			if unit.quiz.timeLimit <= 0 {
				t.Errorf("quiz %q has no time budget", unit.quiz.title)
			}
			if len(unit.quiz.questions) == 0 {
				t.Errorf("quiz %q has no questions", unit.quiz.title)
			}
			for _, q := range unit.quiz.questions {
				if len(q.options) == 0 {
					t.Errorf("question %q has no options", q.question)
					continue
				}
				if q.correctAnswer < 0 || q.correctAnswer >= len(q.options) {
					t.Errorf("question %q has correct answer %d outside its %d options",
						q.question, q.correctAnswer, len(q.options))
				}
			}
		}
	}
}

func TestBuildQuestionsAssignsIDs(t *testing.T) {
	questions := buildQuestions([]questionData{
		{question: "q1", options: []string{"a", "b"}, correctAnswer: 0},
		{question: "q2", options: []string{"a", "b"}, correctAnswer: 1},
	})
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID.IsZero() {
			t.Errorf("question %d has no id", i)
		}
	}
	if questions[0].ID == questions[1].ID {
		t.Error("question ids must be distinct")
	}
}
