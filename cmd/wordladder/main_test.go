package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/search"
)

// writeConfig creates a workspace with a raw word list and a config that
// points every data path into it.
func writeConfig(t *testing.T, backend string) (cfgPath, raw string) {
	t.Helper()
	dir := t.TempDir()

	raw = filepath.Join(dir, "raw.txt")
	require.NoError(t, os.WriteFile(raw, []byte("cat\nBat\nbad\ncot\ndog\nhello\nc4t\n"), 0o644))

	cfgPath = filepath.Join(dir, "wordladder.yaml")
	yml := fmt.Sprintf(`data:
  dict_dir: %s
  graph_dir: %s
  backend: %s
  badger_path: %s
lengths: [3]
logging:
  level: error
`, filepath.Join(dir, "dict"), filepath.Join(dir, "graphs"), backend, filepath.Join(dir, "badger"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o644))

	return cfgPath, raw
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(args, &out, &out)

	return out.String(), err
}

func TestCLI_PrepareBuildQuery(t *testing.T) {
	for _, backend := range []string{"file", "badger"} {
		t.Run(backend, func(t *testing.T) {
			cfg, raw := writeConfig(t, backend)

			out, err := run(t, "--config", cfg, "prepare", raw)
			require.NoError(t, err)
			assert.Contains(t, out, "3-letter: 5 words")

			out, err = run(t, "--config", cfg, "build")
			require.NoError(t, err)
			assert.Contains(t, out, "built")

			out, err = run(t, "--config", cfg, "build", "--length", "3")
			require.NoError(t, err)
			assert.Contains(t, out, "skipped")

			out, err = run(t, "--config", cfg, "path", "CAT", "bad", "--algo", "bfs")
			require.NoError(t, err)
			assert.Contains(t, out, "BFS: cat -> bat -> bad")
			assert.Contains(t, out, "steps=2")

			out, err = run(t, "--config", cfg, "hint", "cat", "bad")
			require.NoError(t, err)
			assert.Equal(t, "A*: change letter 1 to \"b\" -> bat\n", out)

			out, err = run(t, "--config", cfg, "compare", "cat", "bad", "--json")
			require.NoError(t, err)
			var reports []search.Report
			require.NoError(t, json.Unmarshal([]byte(out), &reports))
			require.Len(t, reports, 3)
			for _, r := range reports {
				assert.Equal(t, search.Path{"cat", "bat", "bad"}, r.Path, r.Algorithm.String())
			}
		})
	}
}

func TestCLI_PathTraceAndJSON(t *testing.T) {
	cfg, raw := writeConfig(t, "file")
	_, err := run(t, "--config", cfg, "prepare", raw)
	require.NoError(t, err)
	_, err = run(t, "--config", cfg, "build")
	require.NoError(t, err)

	out, err := run(t, "--config", cfg, "path", "cat", "bad", "--algo", "UCS", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "expand cat g=0.000")
	assert.Contains(t, out, "pos=")

	out, err = run(t, "--config", cfg, "path", "cat", "bad", "--json")
	require.NoError(t, err)
	var rep search.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, search.AStar, rep.Algorithm)
	assert.InDelta(t, 3.476, rep.Stats.TotalCost, 1e-3)
}

func TestCLI_Errors(t *testing.T) {
	cfg, raw := writeConfig(t, "file")

	_, err := run(t, "--config", cfg, "path", "cat", "bad")
	assert.ErrorContains(t, err, "not built")

	_, err = run(t, "--config", cfg, "prepare", raw)
	require.NoError(t, err)
	_, err = run(t, "--config", cfg, "build")
	require.NoError(t, err)

	_, err = run(t, "--config", cfg, "path", "cat", "dog")
	assert.ErrorContains(t, err, "no route")

	_, err = run(t, "--config", cfg, "path", "cat", "zzz")
	assert.ErrorContains(t, err, "not in the 3-letter dictionary")

	_, err = run(t, "--config", cfg, "path", "cat", "dogs")
	assert.ErrorContains(t, err, "differ in length")

	_, err = run(t, "--config", cfg, "path", "cat", "bad", "--algo", "dfs")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = run(t, "--config", cfg, "build", "--length", "4")
	assert.ErrorContains(t, err, "1 of 1 builds failed")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "build")
	assert.Error(t, err)
}
