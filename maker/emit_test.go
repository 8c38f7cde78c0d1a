package maker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wtgseal/maker"
)

func TestRenderLine(t *testing.T) {
	assert.Equal(t, "    x\n", maker.RenderLine(2, "x", "  "))
	assert.Equal(t, "x\n", maker.RenderLine(0, "x", "  "))
	assert.Equal(t, "\n", maker.RenderLine(0, "", "  "))

	// Empty indent unit selects the default four spaces.
	assert.Equal(t, "        y\n", maker.RenderLine(2, "y", ""))
}

func TestRender(t *testing.T) {
	block := maker.Block{
		{Level: 0, Text: "class A(TaskSet):"},
		{Level: 1, Text: "pass"},
	}
	assert.Equal(t, "class A(TaskSet):\n    pass\n", maker.Render(block, ""))
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locustfile.py")
	block := maker.Block{
		{Level: 0, Text: "class A(TaskSet):"},
		{Level: 1, Text: "pass"},
		{},
	}

	require.NoError(t, maker.Write(path, block, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, maker.Render(block, ""), string(data))
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locustfile.py")
	long := maker.Block{{Text: "first"}, {Text: "second"}, {Text: "third"}}
	short := maker.Block{{Text: "only"}}

	require.NoError(t, maker.Write(path, long, ""))
	require.NoError(t, maker.Write(path, short, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only\n", string(data))
}

func TestWriteInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locustfile.py")

	err := maker.Write("", maker.Block{}, "")
	require.ErrorIs(t, err, maker.ErrInvalidArgument)

	err = maker.Write(path, nil, "")
	require.ErrorIs(t, err, maker.ErrInvalidArgument)

	// Validation failures must not create the target file.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
