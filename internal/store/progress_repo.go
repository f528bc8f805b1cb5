package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nauta-treinamentos/nauta/ent"
	"github.com/nauta-treinamentos/nauta/ent/progressrecord"
	"github.com/nauta-treinamentos/nauta/internal/progress"
)

// ProgressRepo implements progress.Store on the ent client. A single mutex
// serializes writes so read-modify-write cycles against the same course
// cannot interleave.
type ProgressRepo struct {
	client *ent.Client
	mu     sync.Mutex
}

func (r *ProgressRepo) Get(ctx context.Context, courseID string) (*progress.LearnerProgress, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(progressrecord.CourseIDEQ(courseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress for course %q: %w", courseID, err)
	}
	return rowToRecord(row)
}

func (r *ProgressRepo) Save(ctx context.Context, record *progress.LearnerProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dataMap, err := recordToMap(record)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}

	existing, err := r.client.ProgressRecord.Query().
		Where(progressrecord.CourseIDEQ(record.CourseID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetData(dataMap).
			SetProgressPercent(record.ProgressPercent).
			SetIsCompleted(record.IsCompleted).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.ProgressRecord.Create().
			SetCourseID(record.CourseID).
			SetData(dataMap).
			SetProgressPercent(record.ProgressPercent).
			SetIsCompleted(record.IsCompleted).
			Save(ctx)
	default:
		return fmt.Errorf("query progress for course %q: %w", record.CourseID, err)
	}
	if err != nil {
		return fmt.Errorf("save progress for course %q: %w", record.CourseID, err)
	}
	return nil
}

func (r *ProgressRepo) List(ctx context.Context) ([]*progress.LearnerProgress, error) {
	rows, err := r.client.ProgressRecord.Query().
		Order(ent.Desc(progressrecord.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress records: %w", err)
	}
	records := make([]*progress.LearnerProgress, 0, len(rows))
	for _, row := range rows {
		record, err := rowToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *ProgressRepo) Delete(ctx context.Context, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.CourseIDEQ(courseID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress for course %q: %w", courseID, err)
	}
	return nil
}

// recordToMap converts a progress record to map[string]any for ent JSON storage.
func recordToMap(record *progress.LearnerProgress) (map[string]any, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// rowToRecord converts an ent row back to a progress record.
func rowToRecord(row *ent.ProgressRecord) (*progress.LearnerProgress, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var record progress.LearnerProgress
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, fmt.Errorf("unmarshal progress record: %w", err)
	}
	if record.CompletedLessons == nil {
		record.CompletedLessons = make(map[string]bool)
	}
	if record.QuizStates == nil {
		record.QuizStates = make(map[string]progress.QuizAttemptState)
	}
	record.UpdatedAt = row.UpdatedAt
	return &record, nil
}
