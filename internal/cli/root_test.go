package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/stackup/internal/errors"
	"github.com/NielsdaWheelz/stackup/internal/exec"
	"github.com/NielsdaWheelz/stackup/internal/git"
	"github.com/NielsdaWheelz/stackup/internal/repourl"
)

// gitRunner answers `git --version` and fails everything else.
type gitRunner struct {
	missing bool
}

func (g gitRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	if g.missing {
		return exec.CmdResult{}, os.ErrNotExist
	}
	if name == "git" && len(args) == 1 && args[0] == "--version" {
		return exec.CmdResult{Stdout: "git version 2.44.0\n"}, nil
	}
	return exec.CmdResult{ExitCode: 1}, nil
}

// dirCloner creates an empty destination directory instead of cloning.
type dirCloner struct {
	calls int
}

func (d *dirCloner) Clone(ctx context.Context, ref repourl.Ref, dest string) (git.CloneResult, error) {
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return git.CloneResult{Skipped: true}, nil
	}
	d.calls++
	return git.CloneResult{}, os.MkdirAll(dest, 0755)
}

type harness struct {
	deps   Deps
	cloner *dirCloner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	h := &harness{
		cloner: &dirCloner{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.deps = Deps{
		Runner:  gitRunner{},
		Cloner:  h.cloner,
		Stdin:   strings.NewReader(input),
		Stdout:  h.stdout,
		Stderr:  h.stderr,
		Env:     mapEnv{"STACKUP_CONFIG_DIR": t.TempDir()},
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	return h
}

func (h *harness) run(args ...string) error {
	cmd := NewRootCmd(h.deps)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

type mapEnv map[string]string

func (m mapEnv) Get(key string) string {
	return m[key]
}

func answers(out string) string {
	return strings.Join([]string{
		"demo", out, "user/fe", "https://github.com/user/be.git",
		"https://x.supabase.co", "a", "s",
	}, "\n") + "\n"
}

func TestRoot_ScaffoldsProject(t *testing.T) {
	out := t.TempDir()
	h := newHarness(t, answers(out))

	require.NoError(t, h.run())

	root := filepath.Join(out, "demo")
	assert.DirExists(t, filepath.Join(root, "frontend"))
	assert.FileExists(t, filepath.Join(root, "backend", ".env"))
	assert.FileExists(t, filepath.Join(root, "backend", ".env.example"))
	assert.FileExists(t, filepath.Join(root, "README.md"))
	assert.Equal(t, 2, h.cloner.calls)

	stdout := h.stdout.String()
	assert.Contains(t, stdout, "Project ready!")
	assert.Contains(t, stdout, "frontend/   <- user/fe")
	assert.NotContains(t, stdout, "SUPABASE_SERVICE_ROLE_KEY=s")
}

func TestRoot_ExistingRootConfirmed(t *testing.T) {
	out := t.TempDir()
	root := filepath.Join(out, "demo")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "frontend"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "backend"), 0755))

	h := newHarness(t, answers(out)+"y\n")
	require.NoError(t, h.run())

	assert.Equal(t, 0, h.cloner.calls)
	assert.FileExists(t, filepath.Join(root, "backend", ".env"))
	assert.Contains(t, h.stdout.String(), "clone skipped")
}

func TestRoot_ExistingRootDeclined(t *testing.T) {
	out := t.TempDir()
	root := filepath.Join(out, "demo")
	require.NoError(t, os.MkdirAll(root, 0755))

	h := newHarness(t, answers(out)+"n\n")
	require.NoError(t, h.run())

	assert.Equal(t, 0, h.cloner.calls)
	assert.NoFileExists(t, filepath.Join(root, "README.md"))
	assert.Contains(t, h.stdout.String(), "aborted")
}

func TestRoot_RejectsArgs(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("extra")
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
	assert.Equal(t, 2, errors.ExitCode(err))
}

func TestRoot_RejectsUnknownFlag(t *testing.T) {
	h := newHarness(t, "")
	err := h.run("--name=demo")
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
}

func TestRoot_Version(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run("--version"))
	assert.Equal(t, "stackup dev\n", h.stdout.String())
}

func TestRoot_GitMissing(t *testing.T) {
	h := newHarness(t, answers(t.TempDir()))
	h.deps.Runner = gitRunner{missing: true}

	err := h.run()
	assert.Equal(t, errors.EGitNotInstalled, errors.GetCode(err))
	assert.Equal(t, 0, h.cloner.calls)
}

func TestRoot_InvalidURL(t *testing.T) {
	out := t.TempDir()
	input := strings.Join([]string{"demo", out, "not a url"}, "\n") + "\n"
	h := newHarness(t, input)

	err := h.run()
	assert.Equal(t, errors.EInvalidRepoURL, errors.GetCode(err))
	assert.NoDirExists(t, filepath.Join(out, "demo"))
}

func TestRoot_ConfigFileDefaults(t *testing.T) {
	out := t.TempDir()
	h := newHarness(t, strings.Join([]string{"", "", "user/fe", "user/be", "https://x.supabase.co", "a", "s"}, "\n")+"\n")
	cfgDir := h.deps.Env.Get("STACKUP_CONFIG_DIR")
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"),
		[]byte("project_name: from-config\noutput_dir: "+out+"\n"), 0644))

	require.NoError(t, h.run())
	assert.FileExists(t, filepath.Join(out, "from-config", "README.md"))
}
