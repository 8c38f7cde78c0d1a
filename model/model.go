// Package model defines the value types shared between the scenario
// parser, the generator, and the UI.
package model

// Task describes one generated task method: its name, spawn weight, and
// the URIs it requests.
type Task struct {
	Name   string   `yaml:"name"`
	Weight int      `yaml:"weight"`
	URIs   []string `yaml:"uris"`
}

// TaskSet groups tasks under one generated TaskSet class.
type TaskSet struct {
	Name  string `yaml:"name"`
	Tasks []Task `yaml:"tasks"`
}

// User describes one generated user-behaviour class and the task set it
// runs. Weight controls how often this user type is spawned relative to
// the others.
type User struct {
	Name    string `yaml:"name"`
	TaskSet string `yaml:"taskset"`
	Weight  int    `yaml:"weight"`
}

// Scenario is a full description of the locust file to generate.
type Scenario struct {
	TaskSets []TaskSet `yaml:"tasksets"`
	Users    []User    `yaml:"users"`
}

// Summary holds the results of a generation run for display.
type Summary struct {
	Output   string
	TaskSets int
	Tasks    int
	Requests int
	Message  string
}
