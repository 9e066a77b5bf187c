package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/guruhq/landing/howitworks"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "guru dev\n", out)
}

func TestStepsCommand(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "missing.yml")

	out, err := run(t, "--config", cfgFile, "steps", "tutor")
	require.NoError(t, err)
	var got map[howitworks.Audience][]howitworks.Step
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, howitworks.DefaultCatalog().Steps(howitworks.Tutors), got[howitworks.Tutors])

	out, err = run(t, "--config", cfgFile, "steps")
	require.NoError(t, err)
	got = nil
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)

	_, err = run(t, "--config", cfgFile, "steps", "parents")
	assert.Error(t, err)
}

func TestStepsCommandUsesStepsFile(t *testing.T) {
	dir := t.TempDir()
	steps := filepath.Join(dir, "steps.yml")
	require.NoError(t, os.WriteFile(steps, []byte(`
student:
  - title: Ask
    description: Tell us what you need.
    image: /static/images/ask.png
`), 0o644))
	cfgFile := filepath.Join(dir, "guru.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("steps_file: "+steps+"\n"), 0o644))

	out, err := run(t, "--config", cfgFile, "steps", "student")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Ask")
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("GURU_LOG__FORMAT", "xml")
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "steps")
	assert.ErrorContains(t, err, "invalid config")
}
