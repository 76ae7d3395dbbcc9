package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// Profile is the candidate master profile, kept as a JSON file on disk and
// edited through the profile endpoints.
type Profile struct {
	Email             string            `json:"email"`
	GithubUsername    string            `json:"github_username"`
	Skills            []string          `json:"skills"`
	YearsExperience   int               `json:"years_experience"`
	WorkAuth          string            `json:"work_auth"`
	SalaryExpectation string            `json:"salary_expectation"`
	Experience        []ExperienceEntry `json:"experience"`
}

// ExperienceEntry is one Action → Context → Result bullet.
type ExperienceEntry struct {
	Action  string `json:"action"`
	Context string `json:"context"`
	Result  string `json:"result"`
}

// LoadProfile reads the profile JSON from path. A missing or empty file is
// not an error; it yields a zero profile so the API can still serve requests.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if len(data) > 0 {
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse profile: %w", err)
		}
	}
	return &p, nil
}

// SaveProfile writes the profile JSON to path, pretty-printed so the file
// stays hand-editable.
func (p *Profile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
