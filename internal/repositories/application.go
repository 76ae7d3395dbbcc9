package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumegenie/backend/internal/models"
)

// ErrPackageNotFound is returned when a lookup references a package id that
// was never persisted.
var ErrPackageNotFound = errors.New("package not found")

type ApplicationRepository interface {
	// SaveApplication reconciles a package for (jobID, requesterEmail):
	// at most one row per pair, relevance score monotonically non-decreasing
	// across repeat saves, content never re-synced after first save.
	// Returns the package id and whether a new row was created.
	SaveApplication(ctx context.Context, jobID, resumeText string, cheatSheet models.CheatSheet, requesterEmail string, relevanceScore *float64) (uuid.UUID, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ApplicationPackage, error)
	FindByJobID(ctx context.Context, jobID string) ([]models.ApplicationPackage, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// SaveApplication implements ApplicationRepository.
//
// Concurrency: the lookup-then-write sequence runs in one transaction, and
// the (job_id, requester_email) unique index is the backstop. When two
// writers race on the same pair, the loser's insert fails with
// gorm.ErrDuplicatedKey and the whole attempt is retried once; the retry
// finds the winner's row and falls into the score-merge path, so the
// conflict is absorbed instead of surfaced.
func (r *applicationRepository) SaveApplication(ctx context.Context, jobID, resumeText string, cheatSheet models.CheatSheet, requesterEmail string, relevanceScore *float64) (uuid.UUID, bool, error) {
	if jobID == "" {
		return uuid.Nil, false, ErrJobNotFound
	}

	for attempt := 0; ; attempt++ {
		id, created, err := r.saveOnce(ctx, jobID, resumeText, cheatSheet, requesterEmail, relevanceScore)
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt == 0 {
			continue
		}
		return id, created, err
	}
}

func (r *applicationRepository) saveOnce(ctx context.Context, jobID, resumeText string, cheatSheet models.CheatSheet, requesterEmail string, relevanceScore *float64) (uuid.UUID, bool, error) {
	var (
		pkgID   uuid.UUID
		created bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Precondition: the job must already be stored.
		var count int64
		if err := tx.Model(&models.Job{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check job: %w", err)
		}
		if count == 0 {
			return ErrJobNotFound
		}

		var existing models.ApplicationPackage
		err := tx.Where("job_id = ? AND requester_email = ?", jobID, requesterEmail).
			First(&existing).Error
		if err == nil {
			// Repeat save for the same requester: merge the score, keep the
			// stored resume and cheat sheet as they are.
			pkgID = existing.ID
			return mergeScore(tx, &existing, relevanceScore)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up packages: %w", err)
		}

		pkg := models.ApplicationPackage{
			ID:             uuid.New(),
			JobID:          jobID,
			RequesterEmail: requesterEmail,
			ResumeText:     resumeText,
			CheatSheet:     embedRequester(cheatSheet, requesterEmail, relevanceScore),
			RelevanceScore: relevanceScore,
		}
		if err := tx.Create(&pkg).Error; err != nil {
			return err
		}
		pkgID = pkg.ID
		created = true
		return nil
	})

	return pkgID, created, err
}

// mergeScore applies the monotonic relevance rule: update only when the new
// score is strictly higher or no score was stored. Decreases are silently
// ignored.
func mergeScore(tx *gorm.DB, existing *models.ApplicationPackage, relevanceScore *float64) error {
	if !shouldUpdateScore(existing.RelevanceScore, relevanceScore) {
		return nil
	}

	sheet := existing.CheatSheet
	if sheet == nil {
		sheet = models.CheatSheet{}
	}
	sheet["relevance_score"] = *relevanceScore

	// The row read at transaction start can be stale when two merges race,
	// so the monotonic rule is re-checked inside the UPDATE itself: a higher
	// score committed by a concurrent writer after our read is kept rather
	// than overwritten.
	err := tx.Model(&models.ApplicationPackage{}).
		Where("id = ? AND (relevance_score IS NULL OR relevance_score < ?)", existing.ID, *relevanceScore).
		Updates(models.ApplicationPackage{
			RelevanceScore: relevanceScore,
			CheatSheet:     sheet,
			UpdatedAt:      time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update relevance score: %w", err)
	}
	return nil
}

func shouldUpdateScore(stored, incoming *float64) bool {
	if incoming == nil {
		return false
	}
	return stored == nil || *incoming > *stored
}

// embedRequester copies the cheat sheet and stamps in the two fields this
// layer owns.
func embedRequester(cheatSheet models.CheatSheet, requesterEmail string, relevanceScore *float64) models.CheatSheet {
	sheet := models.CheatSheet{}
	for k, v := range cheatSheet {
		sheet[k] = v
	}
	if requesterEmail != "" {
		sheet["requester_email"] = requesterEmail
	}
	if relevanceScore != nil {
		sheet["relevance_score"] = *relevanceScore
	}
	return sheet
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ApplicationPackage, error) {
	var pkg models.ApplicationPackage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to find package: %w", err)
	}
	return &pkg, nil
}

// FindByJobID implements ApplicationRepository.
func (r *applicationRepository) FindByJobID(ctx context.Context, jobID string) ([]models.ApplicationPackage, error) {
	var pkgs []models.ApplicationPackage
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Find(&pkgs).Error; err != nil {
		return nil, fmt.Errorf("failed to find packages: %w", err)
	}
	return pkgs, nil
}
