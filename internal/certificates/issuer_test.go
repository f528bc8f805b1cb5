package certificates

import (
	"context"
	"testing"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/progress"
	"github.com/nauta-treinamentos/nauta/internal/store"
)

// fakeRepo mimics the store's one-certificate-per-course behavior.
type fakeRepo struct {
	byCourse map[string]store.Certificate
	order    []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCourse: make(map[string]store.Certificate)}
}

func (r *fakeRepo) Issue(ctx context.Context, cert store.Certificate) (store.Certificate, error) {
	if existing, ok := r.byCourse[cert.CourseID]; ok {
		return existing, nil
	}
	r.byCourse[cert.CourseID] = cert
	r.order = append(r.order, cert.CourseID)
	return cert, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]store.Certificate, error) {
	certs := make([]store.Certificate, 0, len(r.order))
	for _, id := range r.order {
		certs = append(certs, r.byCourse[id])
	}
	return certs, nil
}

func TestIssueOnCompletion(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	issuer := NewIssuer(repo)

	course := catalog.CourseDefinition{ID: "1", Name: "CBSP"}
	record := progress.NewLearnerProgress("1")
	if err := issuer.OnCourseCompleted(ctx, course, record); err != nil {
		t.Fatalf("OnCourseCompleted() error: %v", err)
	}

	certs, _ := issuer.List(ctx)
	if len(certs) != 1 {
		t.Fatalf("certificates = %d, want 1", len(certs))
	}
	if certs[0].CourseID != "1" || certs[0].CourseName != "CBSP" {
		t.Errorf("certificate = %+v", certs[0])
	}
	if certs[0].PublicID == "" {
		t.Error("certificate should carry a generated public id")
	}
}

func TestReCompletionDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	issuer := NewIssuer(repo)

	course := catalog.CourseDefinition{ID: "1", Name: "CBSP"}
	record := progress.NewLearnerProgress("1")
	for i := 0; i < 3; i++ {
		if err := issuer.OnCourseCompleted(ctx, course, record); err != nil {
			t.Fatalf("completion %d: %v", i+1, err)
		}
	}

	certs, _ := issuer.List(ctx)
	if len(certs) != 1 {
		t.Errorf("certificates after repeated completion = %d, want 1", len(certs))
	}
}
