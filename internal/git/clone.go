// Package git wraps the git binary for cloning via CommandRunner.
package git

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/NielsdaWheelz/stackup/internal/errors"
	"github.com/NielsdaWheelz/stackup/internal/exec"
	"github.com/NielsdaWheelz/stackup/internal/fs"
	"github.com/NielsdaWheelz/stackup/internal/repourl"
)

// CloneResult reports what Clone did.
type CloneResult struct {
	// Skipped is true when the destination directory already existed
	// and git was never invoked.
	Skipped bool
}

// Cloner clones a repository into a destination directory.
type Cloner interface {
	Clone(ctx context.Context, ref repourl.Ref, dest string) (CloneResult, error)
}

// CommandCloner is the production Cloner: it shells out to `git clone`.
type CommandCloner struct {
	Runner exec.CommandRunner
	FS     fs.FS

	// Progress receives git's stderr while the clone runs (optional).
	Progress io.Writer
}

// NewCommandCloner creates a CommandCloner.
func NewCommandCloner(cr exec.CommandRunner, fsys fs.FS, progress io.Writer) *CommandCloner {
	return &CommandCloner{Runner: cr, FS: fsys, Progress: progress}
}

// Clone runs `git clone <ref.CloneURL> <dest>` unless dest already exists as a directory.
//
// Errors:
//   - E_CLONE_FAILED if dest exists as a non-directory, or git exits non-zero
//     (details carry exit_code and stderr)
//   - E_GIT_NOT_INSTALLED if git could not be executed at all
func (c *CommandCloner) Clone(ctx context.Context, ref repourl.Ref, dest string) (CloneResult, error) {
	kind, err := fs.Kind(c.FS, dest)
	if err != nil {
		return CloneResult{}, errors.WrapWithDetails(errors.ECloneFailed, "failed to inspect clone destination", err,
			map[string]string{"dest": dest})
	}
	switch kind {
	case fs.KindDir:
		return CloneResult{Skipped: true}, nil
	case fs.KindFile:
		return CloneResult{}, errors.NewWithDetails(errors.ECloneFailed, "clone destination exists and is not a directory",
			map[string]string{"dest": dest})
	}

	result, err := c.Runner.Run(ctx, "git", []string{"clone", ref.CloneURL, dest}, exec.RunOpts{Progress: c.Progress})
	if err != nil {
		if ctx.Err() != nil {
			return CloneResult{}, errors.Wrap(errors.EAborted, "clone interrupted", err)
		}
		return CloneResult{}, errors.Wrap(errors.EGitNotInstalled, "failed to run git clone", err)
	}

	if result.ExitCode != 0 {
		return CloneResult{}, errors.NewWithDetails(errors.ECloneFailed,
			"git clone failed for "+ref.CloneURL+"; check the URL and that you have access to the repository",
			map[string]string{
				"exit_code": strconv.Itoa(result.ExitCode),
				"stderr":    strings.TrimSpace(result.Stderr),
				"dest":      dest,
			})
	}

	return CloneResult{Skipped: false}, nil
}

// CheckInstalled runs `git --version` and returns the version line.
// Returns E_GIT_NOT_INSTALLED if git is missing or fails.
func CheckInstalled(ctx context.Context, cr exec.CommandRunner) (string, error) {
	result, err := cr.Run(ctx, "git", []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return "", errors.Wrap(errors.EGitNotInstalled, "git is not installed or not on your PATH", err)
	}
	if result.ExitCode != 0 {
		return "", errors.NewWithDetails(errors.EGitNotInstalled, "git --version failed",
			map[string]string{"exit_code": strconv.Itoa(result.ExitCode)})
	}
	return strings.TrimSpace(result.Stdout), nil
}
