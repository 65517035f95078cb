package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code           int
	stdout, stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code, stdout.String(), stderr.String()}
}

func TestStdin(t *testing.T) {
	res := runCLI(t, "+-+\n| |\n+-+\n")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "+-+\n| |\n+-+\n", res.stdout)
}

func TestFiles(t *testing.T) {
	res := runCLI(t, "", "testdata/edge.txt", "testdata/mixed.txt")
	assert.Equal(t, 1, res.code)
	assert.Equal(t,
		"+---+\n|1*1|\n|111|\n+---+\n\n"+
			"+-----+\n|1*3*1|\n|13*31|\n| 2*2 |\n| 111 |\n+-----+\n",
		res.stdout)
	assert.Contains(t, res.stderr, "testdata/mixed.txt:8: board 1: malformed line 1")
}

func TestDashReadsStdin(t *testing.T) {
	res := runCLI(t, "+-+\n|*|\n+-+\n", "testdata/edge.txt", "-")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "+---+\n|1*1|\n|111|\n+---+\n\n+-+\n|*|\n+-+\n", res.stdout)
}

func TestMissingFile(t *testing.T) {
	res := runCLI(t, "", "testdata/nope.txt")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "testdata/nope.txt: unable to open")
}

func TestJSONOutput(t *testing.T) {
	res := runCLI(t, "", "-o", "json", "testdata/edge.txt")
	require.Equal(t, 0, res.code, res.stderr)

	var dto struct {
		Source string   `json:"source"`
		Lines  []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &dto))
	assert.Equal(t, "testdata/edge.txt", dto.Source)
	assert.Equal(t, []string{"+---+", "|1*1|", "|111|", "+---+"}, dto.Lines)
}

func TestBadFlags(t *testing.T) {
	res := runCLI(t, "", "-o", "yaml")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown output mode")

	res = runCLI(t, "", "--set", "nonsense")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid override")
}

func TestConfigFileAndLogFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "minefield.log")
	cfgFile := filepath.Join(dir, "minefield.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output: json\nparallel_threshold: 1\n"), 0o644))

	res := runCLI(t, "+-+\n| |\n+-+\n",
		"-c", cfgFile, "-o", "text", "--log-level", "debug", "--log-file", logFile)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "+-+\n| |\n+-+\n", res.stdout)

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "processed source")
}
