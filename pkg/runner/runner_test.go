package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestExecRunner_Success(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "ok.sh", `echo "out:$1"; pwd > cwd.txt; echo "$PKGHELPER_TEST_VAR" > env.txt`)

	var stdout bytes.Buffer
	res, err := runner.New().Run(context.Background(), runner.Command{
		Name:   script,
		Args:   []string{"arg1"},
		Dir:    dir,
		Env:    map[string]string{"PKGHELPER_TEST_VAR": "from-env"},
		Stdout: &stdout,
	})

	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "out:arg1\n", stdout.String())

	cwd, err := os.ReadFile(filepath.Join(dir, "cwd.txt"))
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, strings.TrimSpace(string(cwd)))

	env, err := os.ReadFile(filepath.Join(dir, "env.txt"))
	require.NoError(t, err)
	assert.Equal(t, "from-env\n", string(env))
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "fail.sh", `echo "boom" >&2; exit 3`)

	var stderr bytes.Buffer
	res, err := runner.New().Run(context.Background(), runner.Command{Name: script, Stderr: &stderr})

	require.NoError(t, err, "non-zero exit is reported in the result")
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
	assert.Equal(t, "boom\n", res.Stderr)
	assert.Equal(t, "boom\n", stderr.String())
}

func TestExecRunner_StartFailure(t *testing.T) {
	res, err := runner.New().Run(context.Background(), runner.Command{
		Name: filepath.Join(t.TempDir(), "does-not-exist"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandStart))
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecRunner_EmptyName(t *testing.T) {
	_, err := runner.New().Run(context.Background(), runner.Command{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDryRunner(t *testing.T) {
	dry := runner.NewDryRunner()
	cmd := runner.Command{Name: "install", Args: []string{"-m", "644", "--", "a", "b"}}

	res, err := dry.Run(context.Background(), cmd)
	require.NoError(t, err)
	assert.True(t, res.Success())

	recorded := dry.Commands()
	require.Len(t, recorded, 1)
	assert.Equal(t, "install -m 644 -- a b", recorded[0].String())
}
