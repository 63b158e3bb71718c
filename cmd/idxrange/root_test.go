package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFresh(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", example)
	b := writeFile(t, dir, "b.txt", "1-2\n\n2\n3\n")

	cases := map[string]struct {
		args     []string
		expected string
	}{
		"All": {
			args:     []string{"fresh", b, a},
			expected: a + ": fresh=3 total=14\n" + b + ": fresh=1 total=2\n",
		},
		"Selector": {
			args:     []string{"fresh", "--selector", "file=b.txt", a, b},
			expected: b + ": fresh=1 total=2\n",
		},
		"ExtraLabels": {
			args:     []string{"fresh", "--label", "site=north", "--selector", "site=north,file!=b.txt", a, b},
			expected: a + ": fresh=3 total=14\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestFreshDuplicateFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", example)

	out, err := run(t, "fresh", a, a)
	assert.NoError(t, err)
	assert.Equal(t, a+": fresh=3 total=14\n", out)
}

func TestFreshEnv(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", example)
	b := writeFile(t, dir, "b.txt", "1-2\n\n2\n")

	cases := map[string]struct {
		env      map[string]string
		args     []string
		expected string
	}{
		"Selector": {
			env:      map[string]string{"IDXRANGE_SELECTOR": "file=b.txt"},
			args:     []string{"fresh", a, b},
			expected: b + ": fresh=1 total=2\n",
		},
		"Label": {
			env:      map[string]string{"IDXRANGE_LABEL": "site=x,zone=y"},
			args:     []string{"fresh", "--selector", "zone=y,file=a.txt", a, b},
			expected: a + ": fresh=3 total=14\n",
		},
		"FlagOverridesEnv": {
			env:      map[string]string{"IDXRANGE_SELECTOR": "file=b.txt"},
			args:     []string{"fresh", "--selector", "file=a.txt", a, b},
			expected: a + ": fresh=3 total=14\n",
		},
		"LogLevel": {
			env:      map[string]string{"IDXRANGE_LOG_LEVEL": "debug"},
			args:     []string{"fresh", a},
			expected: a + ": fresh=3 total=14\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			out, err := run(t, tc.args...)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}

	t.Setenv("IDXRANGE_LOG_LEVEL", "loud")
	_, err := run(t, "fresh", a)
	assert.Error(t, err)
}

func TestFreshErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", example)

	_, err := run(t, "fresh", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	_, err = run(t, "fresh", "--selector", "a in (", a)
	assert.Error(t, err)

	_, err = run(t, "fresh", "--log-level", "loud", a)
	assert.Error(t, err)
}

func TestFreshConfigFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", example)
	b := writeFile(t, dir, "b.txt", "1-2\n\n2\n")
	cfg := writeFile(t, dir, "config.yaml", "log-level: debug\nselector: file=a.txt\n")

	out, err := run(t, "--config", cfg, "fresh", a, b)
	assert.NoError(t, err)
	assert.Equal(t, a+": fresh=3 total=14\n", out)
}

func TestContains(t *testing.T) {
	out, err := run(t, "contains", "-r", "1-4", "-r", "6-8", "4", "5", "6")
	assert.NoError(t, err)
	assert.Equal(t, "4 true\n5 false\n6 true\n", out)

	_, err = run(t, "contains", "-r", "10-1", "4")
	assert.Error(t, err)

	_, err = run(t, "contains", "-r", "1-4", "x")
	assert.Error(t, err)
}

func TestAddr(t *testing.T) {
	out, err := run(t, "addr", "-r", "10.0.0.0/24", "-r", "192.168.1.1-192.168.1.9", "10.0.0.7", "192.168.1.10")
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.7 true\n192.168.1.10 false\n", out)

	_, err = run(t, "addr", "-r", "10.0.0.0/24", "10.0.0")
	assert.Error(t, err)
}
