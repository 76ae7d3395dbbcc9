package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore writes generated resume text to disk so the static route can
// serve it. Document compilation (LaTeX, PDF) happens outside this service.
type ArtifactStore interface {
	SaveResume(jobID, text string) (string, error)
	GetFilePath(filename string) string
	EnsureOutputDir() error
}

type artifactStore struct {
	outputPath string
}

func NewArtifactStore(outputPath string) ArtifactStore {
	return &artifactStore{
		outputPath: outputPath,
	}
}

func (s *artifactStore) EnsureOutputDir() error {
	if err := os.MkdirAll(s.outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// SaveResume writes the resume under a filename derived from the job id and
// returns that filename. Job ids contain slashes and other URL-hostile
// characters, so they are sanitized first.
func (s *artifactStore) SaveResume(jobID, text string) (string, error) {
	filename := fmt.Sprintf("resume_%s.md", SanitizeJobID(jobID))
	path := filepath.Join(s.outputPath, filename)

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to save resume: %w", err)
	}
	return filename, nil
}

func (s *artifactStore) GetFilePath(filename string) string {
	return filepath.Join(s.outputPath, filename)
}

// SanitizeJobID replaces path separators so a job id can serve as a filename.
// Only slashes are rewritten; the frontend derives the same filename from the
// raw id, so the mapping must stay this minimal.
func SanitizeJobID(jobID string) string {
	return strings.ReplaceAll(jobID, "/", "_")
}
