package store

import (
	"context"
	"testing"

	"github.com/nauta-treinamentos/nauta/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Absent record reads as nil.
	record, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if record != nil {
		t.Fatal("expected nil record before any save")
	}

	record = progress.NewLearnerProgress("1")
	record.CompletedLessons["l1"] = true
	record.QuizStates["q1"] = progress.QuizAttemptState{
		QuizID: "q1", AttemptsMade: 2, BestScore: 50,
	}
	record.ProgressPercent = 13
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record after save")
	}
	if !got.CompletedLessons["l1"] {
		t.Error("completed lessons lost in round trip")
	}
	if state := got.QuizState("q1"); state.AttemptsMade != 2 || state.BestScore != 50 {
		t.Errorf("quiz state after round trip = %+v", state)
	}
	if got.ProgressPercent != 13 || got.IsCompleted {
		t.Errorf("derived fields after round trip = %d%% completed=%v", got.ProgressPercent, got.IsCompleted)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("updated_at not populated")
	}
}

func TestProgressSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	record := progress.NewLearnerProgress("1")
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("first save: %v", err)
	}
	record.CompletedLessons["l1"] = true
	record.ProgressPercent = 50
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("second save: %v", err)
	}

	count, err := s.Client().ProgressRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows for one course = %d, want 1", count)
	}
	got, _ := repo.Get(ctx, "1")
	if got.ProgressPercent != 50 {
		t.Errorf("percent after update = %d, want 50", got.ProgressPercent)
	}
}

func TestProgressListAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for _, id := range []string{"1", "7"} {
		if err := repo.Save(ctx, progress.NewLearnerProgress(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("listed %d records, want 2", len(records))
	}

	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if record, _ := repo.Get(ctx, "1"); record != nil {
		t.Error("record survived delete")
	}
	// Absent delete is a no-op.
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestCertificateIssueIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.CertificateRepo()
	ctx := context.Background()

	first, err := repo.Issue(ctx, Certificate{
		PublicID: "cert-a", CourseID: "1", CourseName: "CBSP",
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if first.PublicID != "cert-a" || first.IssuedAt.IsZero() {
		t.Errorf("issued certificate = %+v", first)
	}

	// Second issue for the same course returns the original.
	second, err := repo.Issue(ctx, Certificate{
		PublicID: "cert-b", CourseID: "1", CourseName: "CBSP",
	})
	if err != nil {
		t.Fatalf("re-issue: %v", err)
	}
	if second.PublicID != "cert-a" {
		t.Errorf("re-issue returned %q, want the original cert-a", second.PublicID)
	}

	certs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(certs) != 1 {
		t.Errorf("certificates stored = %d, want 1", len(certs))
	}
}

func TestCertificateByCourseAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.CertificateRepo()

	cert, err := repo.ByCourse(context.Background(), "missing")
	if err != nil {
		t.Fatalf("by course: %v", err)
	}
	if cert != nil {
		t.Errorf("certificate for unknown course = %+v, want nil", cert)
	}
}
