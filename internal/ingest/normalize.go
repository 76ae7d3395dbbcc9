// Package ingest turns raw board records into canonical, deduplicated Job
// rows ready for analysis and persistence.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"resumegenie/backend/internal/models"
	"resumegenie/backend/internal/sources"
)

// fingerprintDescLen is how many characters of the description participate in
// the fingerprint. Counted in runes, not bytes, so the hash is stable across
// encodings of the same text.
const fingerprintDescLen = 200

// ErrNoNativeID marks a raw record that cannot be assigned a stable identity.
// Such records are dropped, not stored.
var ErrNoNativeID = errors.New("raw record has no native id")

// Normalize converts one raw record plus its source tag into the canonical
// Job shape. Missing optional fields become empty strings; the only fatal
// condition is a missing native id.
func Normalize(raw sources.RawJob, source string, fetchedAt time.Time) (models.Job, error) {
	if raw.NativeID == "" {
		return models.Job{}, ErrNoNativeID
	}

	var salary *string
	if raw.Salary != "" {
		s := raw.Salary
		salary = &s
	}

	return models.Job{
		ID:              source + "_" + raw.NativeID,
		Source:          source,
		Title:           raw.Title,
		Company:         raw.Company,
		Location:        raw.Location,
		Description:     raw.Description,
		Salary:          salary,
		ApplyURL:        raw.ApplyURL,
		Fingerprint:     Fingerprint(raw.Title, raw.Company, raw.Location, raw.Description),
		FetchedAt:       fetchedAt,
		SkillsExtracted: models.StringList{},
	}, nil
}

// Fingerprint hashes title, company, location and the first 200 characters of
// the description. It is a pure function of those four fields: two postings
// with the same text hash identically no matter which board listed them.
func Fingerprint(title, company, location, description string) string {
	sum := sha256.Sum256([]byte(title + company + location + firstRunes(description, fingerprintDescLen)))
	return hex.EncodeToString(sum[:])
}

func firstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
