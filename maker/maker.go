// Package maker builds locust file source as blocks of indented lines.
//
// Every builder is a pure function returning a Block, an ordered sequence
// of (indentation level, text) records. Callers compose blocks by
// concatenation in the order they should appear in the generated file and
// hand the result to Write.
package maker

import (
	"errors"
	"fmt"
)

// Defaults substituted when a builder receives a zero-value parameter.
const (
	DefaultDist    = "wtgseal"
	DefaultVersion = "0.1.0"
	DefaultURL     = "https://pypi.org/project/wtgseal/"

	DefaultTaskName    = "task0"
	DefaultTaskSetName = "MyTaskSet"
	DefaultLocustName  = "MyLocust"
	DefaultWeight      = 1
)

// DefaultIndent is the indentation unit used when rendering a block.
const DefaultIndent = "    "

// ErrInvalidArgument reports a builder or emitter argument that fails its
// validation contract. All argument failures wrap this sentinel.
var ErrInvalidArgument = errors.New("invalid argument")

// Line is one physical line of generated code before rendering.
// Level is the indentation depth and is never negative in a valid block.
type Line struct {
	Level int
	Text  string
}

// Block is an ordered sequence of lines. Blocks are pure values with no
// identity beyond position; order defines the final file order.
type Block []Line

// Concat joins blocks into a single block, preserving order.
func Concat(blocks ...Block) Block {
	var total int
	for _, b := range blocks {
		total += len(b)
	}
	out := make(Block, 0, total)
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// BlankLines returns n blank lines at indentation level zero.
func BlankLines(n int) (Block, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: blank line count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	return make(Block, n), nil
}

// Header returns the two comment lines citing the generating tool, its
// release, and a URL for more information. Empty parameters fall back to
// the package defaults.
func Header(dist, version, url string) Block {
	if dist == "" {
		dist = DefaultDist
	}
	if version == "" {
		version = DefaultVersion
	}
	if url == "" {
		url = DefaultURL
	}
	return Block{
		{Level: 0, Text: fmt.Sprintf("# locust file generated by %s (release %s)", dist, version)},
		{Level: 0, Text: fmt.Sprintf("# See %s for more information", url)},
	}
}

// Imports returns the import lines every generated file needs: the locust
// entities and the pareto distribution used for wait times.
func Imports() Block {
	return Block{
		{Level: 0, Text: "from locust import HttpLocust, TaskSet, task"},
		{Level: 0, Text: "from scipy.stats import pareto"},
	}
}

// Task returns a decorated task method: the @task decorator carrying the
// weight, the def line, and one GET request per URI nested one level
// deeper. URIs are inserted verbatim; escaping them is the caller's
// responsibility. A nil uris slice and a negative indentation level both
// fail with ErrInvalidArgument.
func Task(name string, weight int, uris []string, indLevel int) (Block, error) {
	if uris == nil {
		return nil, fmt.Errorf("%w: uris must be a list of request paths", ErrInvalidArgument)
	}
	if indLevel < 0 {
		return nil, fmt.Errorf("%w: indentation level must be non-negative, got %d", ErrInvalidArgument, indLevel)
	}
	if name == "" {
		name = DefaultTaskName
	}
	if weight < 1 {
		weight = DefaultWeight
	}

	block := make(Block, 0, len(uris)+2)
	block = append(block,
		Line{Level: indLevel, Text: fmt.Sprintf("@task(%d)", weight)},
		Line{Level: indLevel, Text: fmt.Sprintf("def %s(self):", name)},
	)
	for _, uri := range uris {
		block = append(block, Line{Level: indLevel + 1, Text: fmt.Sprintf(`self.client.get("%s")`, uri)})
	}
	return block, nil
}

// TaskSet returns the class declaration line for a task-set grouping. The
// body is supplied by the caller, by concatenating Task blocks after it.
func TaskSet(name string) Block {
	if name == "" {
		name = DefaultTaskSetName
	}
	return Block{{Level: 0, Text: fmt.Sprintf("class %s(TaskSet):", name)}}
}

// Locust returns a user-behaviour class: weight, task set reference, and a
// wait_time method sampling a Pareto distribution. Shape 1.4 and scale 1.0
// model web workload idle times after Barford & Crovella (1998); the fixed
// random state keeps generated wait-time sequences reproducible.
func Locust(name, taskset string, weight, indLevel int) (Block, error) {
	if indLevel < 0 {
		return nil, fmt.Errorf("%w: indentation level must be non-negative, got %d", ErrInvalidArgument, indLevel)
	}
	if name == "" {
		name = DefaultLocustName
	}
	if taskset == "" {
		taskset = DefaultTaskSetName
	}
	if weight < 1 {
		weight = DefaultWeight
	}

	return Block{
		{Level: indLevel, Text: fmt.Sprintf("class %s(HttpLocust):", name)},
		{Level: indLevel + 1, Text: fmt.Sprintf("weight = %d", weight)},
		{Level: indLevel + 1, Text: fmt.Sprintf("task_set = %s", taskset)},
		{Level: indLevel + 1, Text: "pareto_obj = pareto(b=1.4, scale=1)"},
		{Level: indLevel + 1, Text: "pareto_obj.random_state = 1"},
		{},
		{Level: indLevel + 1, Text: "def wait_time(self):"},
		{Level: indLevel + 2, Text: "return self.pareto_obj.rvs()"},
	}, nil
}
