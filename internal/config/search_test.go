package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSearchCriteria_MissingFile(t *testing.T) {
	c, err := LoadSearchCriteria(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must yield defaults, got %v", err)
	}

	if c.Keyword != "python" {
		t.Errorf("expected default keyword python, got %s", c.Keyword)
	}
	if len(c.Countries) != 2 || c.Countries[0] != "gb" {
		t.Errorf("unexpected default countries: %v", c.Countries)
	}
	if c.PackageLimit != 5 {
		t.Errorf("expected default package limit 5, got %d", c.PackageLimit)
	}
	if !c.RemoteOnly {
		t.Error("expected remote_only default true")
	}
}

func TestLoadSearchCriteria_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	data := `keyword: golang
countries:
  - de
skills:
  - go
  - kubernetes
remote_only: false
package_limit: 2
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadSearchCriteria(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Keyword != "golang" {
		t.Errorf("expected keyword golang, got %s", c.Keyword)
	}
	if len(c.Countries) != 1 || c.Countries[0] != "de" {
		t.Errorf("unexpected countries: %v", c.Countries)
	}
	if len(c.Skills) != 2 {
		t.Errorf("unexpected skills: %v", c.Skills)
	}
	if c.RemoteOnly {
		t.Error("expected remote_only false")
	}
	if c.PackageLimit != 2 {
		t.Errorf("expected package limit 2, got %d", c.PackageLimit)
	}
}

func TestLoadSearchCriteria_FillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	if err := os.WriteFile(path, []byte("skills:\n  - rust\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadSearchCriteria(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Keyword != "python" || c.PackageLimit != 5 {
		t.Errorf("missing fields should get defaults, got %+v", c)
	}
}

func TestLoadSearchCriteria_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	if err := os.WriteFile(path, []byte("keyword: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSearchCriteria(path); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}
