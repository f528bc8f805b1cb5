// Package certificates turns course completions into stored certificates.
package certificates

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/progress"
	"github.com/nauta-treinamentos/nauta/internal/store"
)

// Repo is the persistence surface the issuer needs.
type Repo interface {
	Issue(ctx context.Context, cert store.Certificate) (store.Certificate, error)
	List(ctx context.Context) ([]store.Certificate, error)
}

// Issuer issues a certificate when a course completes. Issuance is
// idempotent per course: completing again, or re-completing after a manual
// unmark, never produces a second certificate.
type Issuer struct {
	repo Repo
}

// NewIssuer returns an issuer writing through the given repository.
func NewIssuer(repo Repo) *Issuer {
	return &Issuer{repo: repo}
}

// OnCourseCompleted is the player engine's completion hook.
func (i *Issuer) OnCourseCompleted(ctx context.Context, course catalog.CourseDefinition, record *progress.LearnerProgress) error {
	_, err := i.repo.Issue(ctx, store.Certificate{
		PublicID:   uuid.NewString(),
		CourseID:   course.ID,
		CourseName: course.Name,
	})
	if err != nil {
		return fmt.Errorf("issue certificate: %w", err)
	}
	return nil
}

// List returns all issued certificates, newest first.
func (i *Issuer) List(ctx context.Context) ([]store.Certificate, error) {
	return i.repo.List(ctx)
}
