package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is a completed portfolio job shown on the portfolio page.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Location    string   `json:"location" yaml:"location"`
	Duration    string   `json:"duration" yaml:"duration"`
	Description string   `json:"description" yaml:"description"`
	Client      string   `json:"client" yaml:"client"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Features    []string `json:"features" yaml:"features"`
	Investment  string   `json:"investment" yaml:"investment"`
}

// ProjectStore holds the portfolio in seed order.
type ProjectStore struct {
	projects []Project
}

func NewProjectStore(projects []Project) *ProjectStore {
	out := make([]Project, len(projects))
	copy(out, projects)
	return &ProjectStore{projects: out}
}

// LoadProjects builds the portfolio from the embedded seed.
func LoadProjects() (*ProjectStore, error) {
	data, err := seedFS.ReadFile("seed/projects.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read project seed: %w", err)
	}
	var projects []Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return NewProjectStore(projects), nil
}

// Search filters projects by category (case-insensitive, "all" or empty
// matches everything) and by text over title, description, location and
// features.
func (s *ProjectStore) Search(category, text string) []Project {
	needle := strings.ToLower(text)
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if category != "" && category != "all" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if needle != "" && !p.matches(needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (p Project) matches(needle string) bool {
	fields := append([]string{p.Title, p.Description, p.Location}, p.Features...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
