package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/internal/version"
)

// run executes the command tree with args inside an empty working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestGenerate_Text(t *testing.T) {
	out, err := run(t, "generate", "-n", "60", "-m", "2", "--hs", "100", "--seed", "5", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Model ( 2 ): 60 100 100 1 2 1 10 1024")
	assert.Contains(t, out, "seed: 5")
	assert.Contains(t, out, "edges:")
	assert.Contains(t, out, "117")
}

func TestGenerate_YAML(t *testing.T) {
	out, err := run(t, "generate", "-n", "40", "--hs", "100", "--ls", "10",
		"--placement", "heavy-tailed", "--bw-dist", "uniform", "--format", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var s struct {
		Model  string `yaml:"model"`
		Seed   int64  `yaml:"seed"`
		Report struct {
			Nodes      int `yaml:"nodes"`
			Edges      int `yaml:"edges"`
			Components int `yaml:"components"`
		} `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, "Model ( 2 ): 40 100 10 2 2 2 10 1024", s.Model)
	assert.Equal(t, int64(1), s.Seed)
	assert.Equal(t, 40, s.Report.Nodes)
	assert.Equal(t, 77, s.Report.Edges)
	assert.Equal(t, 1, s.Report.Components)
}

func TestGenerate_Rejects(t *testing.T) {
	_, err := run(t, "generate", "-n", "2", "-m", "2", "--log-level", "error")
	assert.Error(t, err)

	_, err = run(t, "generate", "--placement", "grid")
	assert.Error(t, err)

	_, err = run(t, "generate", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigInitAndUse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvtopo.yaml")

	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = run(t, "generate", "--config", path, "-n", "30", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Model ( 2 ): 30 1000 100 1 2 1 10 1024")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvtopo "+version.Version())
	assert.Contains(t, out, "commit: ")
	assert.Contains(t, out, "built: ")

	out, err = run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version.FullVersion())
}
