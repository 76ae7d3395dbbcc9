package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"resumegenie/backend/internal/models"
)

// ErrJobNotFound is returned when an operation references a job id that was
// never persisted.
var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	// UpsertJobs inserts the records whose id is not yet stored and returns
	// the inserted ids. Existing rows are never touched. The whole batch
	// commits atomically or not at all.
	UpsertJobs(ctx context.Context, jobs []models.Job) ([]string, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	ListTopByScore(ctx context.Context, limit int) ([]models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// UpsertJobs implements JobRepository.
func (r *jobRepository) UpsertJobs(ctx context.Context, jobs []models.Job) ([]string, error) {
	inserted := []string{}
	if len(jobs) == 0 {
		return inserted, nil
	}

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != "" {
			ids = append(ids, j.ID)
		}
	}
	if len(ids) == 0 {
		return inserted, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// One batched existence query for the whole id list.
		var existing []string
		if err := tx.Model(&models.Job{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
			return fmt.Errorf("failed to check existing ids: %w", err)
		}

		newJobs := partitionNew(jobs, existing)
		if len(newJobs) == 0 {
			return nil
		}

		if err := tx.Create(&newJobs).Error; err != nil {
			return fmt.Errorf("failed to insert jobs: %w", err)
		}

		for _, j := range newJobs {
			inserted = append(inserted, j.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

// partitionNew returns the records whose id is neither already stored nor
// repeated earlier in the batch. Records without an id are dropped.
func partitionNew(jobs []models.Job, existing []string) []models.Job {
	skip := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		skip[id] = struct{}{}
	}

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID == "" {
			continue
		}
		if _, ok := skip[j.ID]; ok {
			continue
		}
		skip[j.ID] = struct{}{}
		out = append(out, j)
	}
	return out
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// ListTopByScore implements JobRepository.
func (r *jobRepository) ListTopByScore(ctx context.Context, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListAll implements JobRepository.
func (r *jobRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to export jobs: %w", err)
	}
	return jobs, nil
}
