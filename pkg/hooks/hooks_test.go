package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/hooks"
	"github.com/arthur-debert/pkghelper/pkg/testutil"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(hs []hooks.Hook) []string {
	var out []string
	for _, h := range hs {
		out = append(out, h.Name)
	}
	return out
}

func TestDiscover_SortedAndVisibleOnly(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteScript(t, dir, "20-second", "true")
	testutil.WriteScript(t, dir, "10-first", "true")
	testutil.WriteScript(t, dir, ".disabled", "exit 1")

	found, err := hooks.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"10-first", "20-second"}, names(found))
	assert.True(t, filepath.IsAbs(found[0].Path))
}

func TestDiscover_MissingDirectory(t *testing.T) {
	found, err := hooks.Discover(filepath.Join(t.TempDir(), hooks.DefaultDirName))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDiscover_NotADirectory(t *testing.T) {
	file := testutil.WriteFile(t, t.TempDir(), "hooks", "oops")

	found, err := hooks.Discover(file)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestRun_WorkingDirectoryAndEnvironment(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	hookDir := filepath.Join(src, hooks.DefaultDirName)
	testutil.WriteScript(t, hookDir, "10-marker", `touch marker; echo "$PKGHELPER_OVERLAY_DESTINATION" > dest.txt; echo "$#" > argc.txt`)

	found, err := hooks.Discover(hookDir)
	require.NoError(t, err)

	rec := output.NewRecorder()
	done, err := hooks.NewRunner(hooks.Options{Printer: rec}).Run(context.Background(), found, src, dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"10-marker"}, names(done))

	assert.FileExists(t, filepath.Join(dst, "marker"))
	dest, err := os.ReadFile(filepath.Join(dst, "dest.txt"))
	require.NoError(t, err)
	assert.Equal(t, dst+"\n", string(dest))
	argc, err := os.ReadFile(filepath.Join(dst, "argc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0\n", string(argc), "hooks get no arguments")

	assert.Equal(t, []string{"install_hook: 10-marker"}, rec.Messages(output.LevelInfo))
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	hookDir := filepath.Join(src, hooks.DefaultDirName)
	testutil.WriteScript(t, hookDir, "H1", "touch h1-ran")
	testutil.WriteScript(t, hookDir, "H2", "exit 3")
	testutil.WriteScript(t, hookDir, "H3", "touch h3-ran")

	found, err := hooks.Discover(hookDir)
	require.NoError(t, err)

	rec := output.NewRecorder()
	done, err := hooks.NewRunner(hooks.Options{Printer: rec}).Run(context.Background(), found, src, dst)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookFailed))
	assert.Equal(t, 3, errors.GetErrorDetails(err)["exitCode"])
	assert.Equal(t, "H2", errors.GetErrorDetails(err)["hook"])
	assert.Equal(t, []string{"H1"}, names(done))

	assert.FileExists(t, filepath.Join(dst, "h1-ran"))
	assert.NoFileExists(t, filepath.Join(dst, "h3-ran"))
	assert.Equal(t, []string{"H2: exited with 3"}, rec.Messages(output.LevelError))
}

func TestRun_FailingHookFirstPreventsLater(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	hookDir := filepath.Join(src, hooks.DefaultDirName)
	testutil.WriteScript(t, hookDir, "A-fails", "exit 3")
	testutil.WriteScript(t, hookDir, "B-marks", "touch b-ran")

	found, err := hooks.Discover(hookDir)
	require.NoError(t, err)

	_, err = hooks.NewRunner(hooks.Options{}).Run(context.Background(), found, src, dst)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dst, "b-ran"))
}

func TestRun_NotExecutable(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	hookDir := filepath.Join(src, hooks.DefaultDirName)
	testutil.WriteFile(t, hookDir, "10-plain", "not executable")

	found, err := hooks.Discover(hookDir)
	require.NoError(t, err)

	rec := output.NewRecorder()
	_, err = hooks.NewRunner(hooks.Options{Printer: rec}).Run(context.Background(), found, src, dst)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookFailed))
	assert.Equal(t, []string{"10-plain: could not be started"}, rec.Messages(output.LevelError))
}

func TestRun_DryRun(t *testing.T) {
	fake := &testutil.FakeRunner{}
	hs := []hooks.Hook{{Name: "10-x", Path: "/nonexistent/10-x"}}

	done, err := hooks.NewRunner(hooks.Options{Runner: fake, DryRun: true}).Run(context.Background(), hs, "src", "dst")
	require.NoError(t, err)
	assert.Equal(t, []string{"10-x"}, names(done))
	assert.Empty(t, fake.Calls())
}
