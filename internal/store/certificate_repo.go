package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nauta-treinamentos/nauta/ent"
	entcert "github.com/nauta-treinamentos/nauta/ent/certificate"
)

// Certificate is an issued course-completion certificate.
type Certificate struct {
	PublicID   string
	CourseID   string
	CourseName string
	IssuedAt   time.Time
}

// CertificateRepo persists certificates. At most one certificate exists per
// course; re-issuing returns the existing one.
type CertificateRepo struct {
	client *ent.Client
}

// Issue stores a certificate for a course unless one already exists, in
// which case the existing certificate is returned unchanged.
func (r *CertificateRepo) Issue(ctx context.Context, cert Certificate) (Certificate, error) {
	existing, err := r.ByCourse(ctx, cert.CourseID)
	if err != nil {
		return Certificate{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	row, err := r.client.Certificate.Create().
		SetPublicID(cert.PublicID).
		SetCourseID(cert.CourseID).
		SetCourseName(cert.CourseName).
		Save(ctx)
	if err != nil {
		// A concurrent issuer may have won the unique-constraint race.
		if ent.IsConstraintError(err) {
			if existing, lookupErr := r.ByCourse(ctx, cert.CourseID); lookupErr == nil && existing != nil {
				return *existing, nil
			}
		}
		return Certificate{}, fmt.Errorf("issue certificate for course %q: %w", cert.CourseID, err)
	}
	return rowToCertificate(row), nil
}

// ByCourse returns the certificate for a course, or nil if none was issued.
func (r *CertificateRepo) ByCourse(ctx context.Context, courseID string) (*Certificate, error) {
	row, err := r.client.Certificate.Query().
		Where(entcert.CourseIDEQ(courseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query certificate for course %q: %w", courseID, err)
	}
	cert := rowToCertificate(row)
	return &cert, nil
}

// List returns all certificates, newest first.
func (r *CertificateRepo) List(ctx context.Context) ([]Certificate, error) {
	rows, err := r.client.Certificate.Query().
		Order(ent.Desc(entcert.FieldIssuedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	certs := make([]Certificate, 0, len(rows))
	for _, row := range rows {
		certs = append(certs, rowToCertificate(row))
	}
	return certs, nil
}

func rowToCertificate(row *ent.Certificate) Certificate {
	return Certificate{
		PublicID:   row.PublicID,
		CourseID:   row.CourseID,
		CourseName: row.CourseName,
		IssuedAt:   row.IssuedAt,
	}
}
