// Package scenario parses workload scenario documents into a
// model.Scenario. Two formats are supported: a YAML document describing
// task sets and users in full, and a markdown outline for quick
// hand-written scenarios.
package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"wtgseal/maker"
	"wtgseal/model"
)

// Default returns the scenario used when no input is given: one task set
// with a single task requesting "/" and one user running it.
func Default() *model.Scenario {
	return &model.Scenario{
		TaskSets: []model.TaskSet{{
			Name: maker.DefaultTaskSetName,
			Tasks: []model.Task{{
				Name:   maker.DefaultTaskName,
				Weight: maker.DefaultWeight,
				URIs:   []string{"/"},
			}},
		}},
		Users: []model.User{{
			Name:    maker.DefaultLocustName,
			TaskSet: maker.DefaultTaskSetName,
			Weight:  maker.DefaultWeight,
		}},
	}
}

// Parse decodes content as YAML or markdown, picking the format from the
// filename extension when one is available and sniffing otherwise. Empty
// content yields the default scenario.
func Parse(content []byte, filename string) (*model.Scenario, error) {
	if strings.TrimSpace(string(content)) == "" {
		return Default(), nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(content)
	case ".md", ".markdown":
		return ParseMarkdown(content)
	}

	if looksLikeMarkdown(content) {
		return ParseMarkdown(content)
	}
	return ParseYAML(content)
}

// ParseYAML decodes a full scenario document.
func ParseYAML(content []byte) (*model.Scenario, error) {
	var sc model.Scenario
	if err := yaml.Unmarshal(content, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := normalize(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// looksLikeMarkdown reports whether the first non-blank line is a heading.
func looksLikeMarkdown(content []byte) bool {
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "## ")
	}
	return false
}

// normalize fills in defaults and validates cross-references. Task sets
// without tasks get the default task, tasks without URIs request "/", and
// a scenario without users gets one user per task set.
func normalize(sc *model.Scenario) error {
	if len(sc.TaskSets) == 0 {
		sc.TaskSets = Default().TaskSets
	}

	names := make(map[string]struct{}, len(sc.TaskSets))
	for i := range sc.TaskSets {
		ts := &sc.TaskSets[i]
		if ts.Name == "" {
			ts.Name = maker.DefaultTaskSetName
		}
		if _, dup := names[ts.Name]; dup {
			return fmt.Errorf("duplicate task set %q", ts.Name)
		}
		names[ts.Name] = struct{}{}

		if len(ts.Tasks) == 0 {
			ts.Tasks = []model.Task{{}}
		}
		for j := range ts.Tasks {
			task := &ts.Tasks[j]
			if task.Name == "" {
				task.Name = fmt.Sprintf("task%d", j)
			}
			if task.Weight < 1 {
				task.Weight = maker.DefaultWeight
			}
			if len(task.URIs) == 0 {
				task.URIs = []string{"/"}
			}
		}
	}

	if len(sc.Users) == 0 {
		for _, ts := range sc.TaskSets {
			name := maker.DefaultLocustName
			if len(sc.TaskSets) > 1 {
				name = ts.Name + "User"
			}
			sc.Users = append(sc.Users, model.User{
				Name:    name,
				TaskSet: ts.Name,
				Weight:  maker.DefaultWeight,
			})
		}
	}
	for i := range sc.Users {
		user := &sc.Users[i]
		if user.Name == "" {
			user.Name = maker.DefaultLocustName
		}
		if user.Weight < 1 {
			user.Weight = maker.DefaultWeight
		}
		if user.TaskSet == "" {
			user.TaskSet = sc.TaskSets[0].Name
		}
		if _, ok := names[user.TaskSet]; !ok {
			return fmt.Errorf("user %q references unknown task set %q", user.Name, user.TaskSet)
		}
	}
	return nil
}
