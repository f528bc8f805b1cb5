package progress

import (
	"context"
	"testing"
)

func TestMemoryStoreGetAbsent(t *testing.T) {
	s := NewMemoryStore()
	record, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if record != nil {
		t.Errorf("Get() on absent course = %+v, want nil", record)
	}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	record := NewLearnerProgress("1")
	record.CompletedLessons["l1"] = true
	record.ProgressPercent = 13
	if err := s.Save(ctx, record); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Get(ctx, "1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil after Save")
	}
	if !got.CompletedLessons["l1"] || got.ProgressPercent != 13 {
		t.Errorf("round-tripped record = %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("Save should stamp UpdatedAt")
	}

	// Mutating the returned copy must not leak into the store.
	got.CompletedLessons["l2"] = true
	again, _ := s.Get(ctx, "1")
	if again.CompletedLessons["l2"] {
		t.Error("store record aliased by Get result")
	}
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Save(ctx, NewLearnerProgress("1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, NewLearnerProgress("7")); err != nil {
		t.Fatal(err)
	}

	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List() = %d records, want 2", len(records))
	}

	if err := s.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if record, _ := s.Get(ctx, "1"); record != nil {
		t.Error("record survived Delete")
	}
	// Deleting again is a no-op.
	if err := s.Delete(ctx, "1"); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}
}

func TestQuizStateZeroValue(t *testing.T) {
	p := NewLearnerProgress("1")
	state := p.QuizState("q1")
	if state.QuizID != "q1" || state.AttemptsMade != 0 || state.Passed {
		t.Errorf("zero quiz state = %+v", state)
	}

	p.QuizStates["q1"] = QuizAttemptState{QuizID: "q1", AttemptsMade: 2, BestScore: 50}
	state = p.QuizState("q1")
	if state.AttemptsMade != 2 || state.BestScore != 50 {
		t.Errorf("stored quiz state = %+v", state)
	}
}

func TestCompletedCount(t *testing.T) {
	p := NewLearnerProgress("1")
	p.CompletedLessons["l1"] = true
	p.CompletedLessons["l2"] = false
	p.CompletedLessons["l3"] = true
	if got := p.CompletedCount(); got != 2 {
		t.Errorf("CompletedCount() = %d, want 2", got)
	}
}
