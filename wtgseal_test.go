package wtgseal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wtgseal"
	"wtgseal/cli"
	"wtgseal/internal/scenario"
	"wtgseal/maker"
	"wtgseal/model"
)

func TestAssembleDefaultScenario(t *testing.T) {
	block, err := wtgseal.Assemble(scenario.Default())
	require.NoError(t, err)

	text := maker.Render(block, "")
	assert.Contains(t, text, "# locust file generated by wtgseal")
	assert.Contains(t, text, "from locust import HttpLocust, TaskSet, task")
	assert.Contains(t, text, "from scipy.stats import pareto")
	assert.Contains(t, text, "class MyTaskSet(TaskSet):")
	assert.Contains(t, text, "    @task(1)")
	assert.Contains(t, text, "    def task0(self):")
	assert.Contains(t, text, `        self.client.get("/")`)
	assert.Contains(t, text, "class MyLocust(HttpLocust):")
	assert.Contains(t, text, "    task_set = MyTaskSet")
	assert.Contains(t, text, "    pareto_obj = pareto(b=1.4, scale=1)")
	assert.Contains(t, text, "    pareto_obj.random_state = 1")
}

func TestAssembleOrder(t *testing.T) {
	block, err := wtgseal.Assemble(scenario.Default())
	require.NoError(t, err)
	text := maker.Render(block, "")

	header := strings.Index(text, "# locust file")
	imports := strings.Index(text, "from locust import")
	taskset := strings.Index(text, "class MyTaskSet")
	locust := strings.Index(text, "class MyLocust")
	require.True(t, header >= 0 && imports >= 0 && taskset >= 0 && locust >= 0)
	assert.Less(t, header, imports)
	assert.Less(t, imports, taskset)
	assert.Less(t, taskset, locust)
}

func TestAssembleInvalidScenario(t *testing.T) {
	// A hand-built scenario that skipped normalization: nil URIs reach the
	// task builder and fail its validation contract.
	sc := &model.Scenario{
		TaskSets: []model.TaskSet{{Name: "Shop", Tasks: []model.Task{{Name: "browse"}}}},
	}
	_, err := wtgseal.Assemble(sc)
	require.ErrorIs(t, err, maker.ErrInvalidArgument)
}

func TestExecuteWritesFile(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	outputPath := filepath.Join(dir, "locustfile.py")

	doc := `
tasksets:
  - name: Shop
    tasks:
      - name: browse
        weight: 2
        uris: ["/", "/items"]
users:
  - name: Shopper
    taskset: Shop
`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(doc), 0644))

	app := wtgseal.New(&cli.Config{
		ScenarioPath: scenarioPath,
		Output:       outputPath,
		Indent:       4,
	})
	summary, err := app.Execute()
	require.NoError(t, err)

	assert.Equal(t, outputPath, summary.Output)
	assert.Equal(t, 1, summary.TaskSets)
	assert.Equal(t, 1, summary.Tasks)
	assert.Equal(t, 2, summary.Requests)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "class Shop(TaskSet):")
	assert.Contains(t, content, "    @task(2)")
	assert.Contains(t, content, "    def browse(self):")
	assert.Contains(t, content, `        self.client.get("/items")`)
	assert.Contains(t, content, "class Shopper(HttpLocust):")
}

func TestExecuteIndentWidth(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "locustfile.py")
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte("tasksets:\n  - name: Shop\n"), 0644))

	app := wtgseal.New(&cli.Config{
		ScenarioPath: scenarioPath,
		Output:       outputPath,
		Indent:       2,
	})
	_, err := app.Execute()
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  @task(1)\n")
	assert.Contains(t, string(data), "\n    self.client.get(\"/\")\n")
}

func TestExecuteBadScenarioFile(t *testing.T) {
	app := wtgseal.New(&cli.Config{
		ScenarioPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Output:       "locustfile.py",
		Indent:       4,
	})
	_, err := app.Execute()
	require.Error(t, err)
}
