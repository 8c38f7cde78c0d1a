package scenario

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"wtgseal/model"
)

// taskHeadingRegex splits a task heading like "browse (3)" into a name and
// an optional weight suffix.
var taskHeadingRegex = regexp.MustCompile(`^(.*?)\s*\((\d+)\)$`)

// ParseMarkdown builds a scenario from a markdown outline. A level-1
// heading opens a task set, a level-2 heading opens a task with an
// optional "(N)" weight suffix, and list items under it are request URIs.
// Users cannot be expressed in this format; normalize synthesizes one per
// task set.
func ParseMarkdown(content []byte) (*model.Scenario, error) {
	var sc model.Scenario

	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(n.Text(content)))
			switch n.Level {
			case 1:
				sc.TaskSets = append(sc.TaskSets, model.TaskSet{Name: title})
			case 2:
				if len(sc.TaskSets) == 0 {
					return ast.WalkStop, fmt.Errorf("task heading %q appears before any task set heading", title)
				}
				name, weight := splitTaskHeading(title)
				ts := &sc.TaskSets[len(sc.TaskSets)-1]
				ts.Tasks = append(ts.Tasks, model.Task{Name: name, Weight: weight})
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			uri := strings.TrimSpace(string(n.Text(content)))
			if uri == "" {
				return ast.WalkSkipChildren, nil
			}
			if len(sc.TaskSets) == 0 {
				return ast.WalkStop, fmt.Errorf("request %q appears before any task set heading", uri)
			}
			ts := &sc.TaskSets[len(sc.TaskSets)-1]
			if len(ts.Tasks) == 0 {
				return ast.WalkStop, fmt.Errorf("request %q appears before any task heading", uri)
			}
			task := &ts.Tasks[len(ts.Tasks)-1]
			task.URIs = append(task.URIs, uri)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if len(sc.TaskSets) == 0 {
		return nil, fmt.Errorf("no task set headings found in markdown scenario")
	}
	if err := normalize(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func splitTaskHeading(title string) (string, int) {
	if m := taskHeadingRegex.FindStringSubmatch(title); m != nil {
		weight, _ := strconv.Atoi(m[2])
		return strings.TrimSpace(m[1]), weight
	}
	return title, 0
}
