package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SearchCriteria drives what the pipeline fetches and keeps. It lives in a
// YAML file next to the binary so criteria can change without a redeploy.
type SearchCriteria struct {
	// Keyword is the query sent to keyword-driven boards (Adzuna, USAJOBS, HN).
	Keyword string `yaml:"keyword"`
	// Countries are Adzuna country codes, one search per country.
	Countries []string `yaml:"countries"`
	// Skills gate the match filter: a job must share at least one extracted
	// skill with this list. Empty means the candidate profile's skills apply.
	Skills []string `yaml:"skills"`
	// RemoteOnly drops jobs not flagged remote by the analysis stage.
	RemoteOnly bool `yaml:"remote_only"`
	// PackageLimit caps how many top-ranked jobs get an application package
	// per run.
	PackageLimit int `yaml:"package_limit"`
}

// LoadSearchCriteria parses the YAML criteria file and applies defaults for
// anything left unset.
func LoadSearchCriteria(path string) (*SearchCriteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := defaultSearchCriteria()
			return &c, nil
		}
		return nil, fmt.Errorf("failed to read search criteria: %w", err)
	}

	c := defaultSearchCriteria()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse search criteria: %w", err)
	}

	if c.Keyword == "" {
		c.Keyword = "python"
	}
	if len(c.Countries) == 0 {
		c.Countries = []string{"gb", "us"}
	}
	if c.PackageLimit <= 0 {
		c.PackageLimit = 5
	}
	return &c, nil
}

func defaultSearchCriteria() SearchCriteria {
	return SearchCriteria{
		Keyword:      "python",
		Countries:    []string{"gb", "us"},
		RemoteOnly:   true,
		PackageLimit: 5,
	}
}
