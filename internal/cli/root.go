// Package cli wires the stackup root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NielsdaWheelz/stackup/internal/config"
	"github.com/NielsdaWheelz/stackup/internal/errors"
	"github.com/NielsdaWheelz/stackup/internal/exec"
	"github.com/NielsdaWheelz/stackup/internal/fs"
	"github.com/NielsdaWheelz/stackup/internal/git"
	"github.com/NielsdaWheelz/stackup/internal/paths"
	"github.com/NielsdaWheelz/stackup/internal/project"
	"github.com/NielsdaWheelz/stackup/internal/prompt"
	"github.com/NielsdaWheelz/stackup/internal/render"
	"github.com/NielsdaWheelz/stackup/internal/version"
)

const longHelp = `stackup creates a project folder containing two cloned repositories:

  <name>/
  ├── frontend/   cloned from the frontend repo
  └── backend/    cloned from the backend repo, with Supabase .env files

It asks for the project name, output directory, both repo URLs and the
Supabase URL, anon key and service role key. Re-running against an existing
project skips the clones and only fills in what is missing.

Prompt defaults can be set in <config dir>/config.{toml,yaml,json} or with
STACKUP_PROJECT_NAME, STACKUP_OUTPUT_DIR and STACKUP_LOG_LEVEL. SUPABASE_URL
and SUPABASE_ANON_KEY are picked up from a .env in the current directory.`

// Deps are the collaborators of the root command. Zero fields get production
// implementations.
type Deps struct {
	Runner   exec.CommandRunner
	FS       fs.FS
	Cloner   git.Cloner
	Provider prompt.Provider

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Env     paths.Env
	HomeDir string
	WorkDir string
}

// osEnv implements paths.Env using os.Getenv.
type osEnv struct{}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

// Run builds the root command with production dependencies and executes it.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := Deps{Stdin: stdin, Stdout: stdout, Stderr: stderr, Env: osEnv{}}

	if home, err := os.UserHomeDir(); err == nil {
		deps.HomeDir = home
	}
	if wd, err := os.Getwd(); err == nil {
		deps.WorkDir = wd
	}

	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCmd returns the stackup root command. It takes no arguments and no
// flags beyond --help and --version.
func NewRootCmd(deps Deps) *cobra.Command {
	deps = withDefaults(deps)

	cmd := &cobra.Command{
		Use:           "stackup",
		Short:         "Scaffold a frontend + backend project with Supabase credentials",
		Long:          longHelp,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.NewWithDetails(errors.EUsage, "stackup takes no arguments; it asks for everything interactively",
					map[string]string{"args": fmt.Sprint(args)})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd.Context(), deps)
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, "invalid flags", err)
	})
	cmd.SetVersionTemplate("stackup {{.Version}}\n")

	return cmd
}

func withDefaults(deps Deps) Deps {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Env == nil {
		deps.Env = osEnv{}
	}
	if deps.Runner == nil {
		deps.Runner = exec.NewRealRunner()
	}
	if deps.FS == nil {
		deps.FS = fs.NewRealFS()
	}
	if deps.Cloner == nil {
		deps.Cloner = git.NewCommandCloner(deps.Runner, deps.FS, deps.Stderr)
	}
	if deps.Provider == nil {
		deps.Provider = defaultProvider(deps.Stdin, deps.Stdout)
	}
	return deps
}

// defaultProvider uses huh forms on an interactive terminal and plain line
// reading otherwise.
func defaultProvider(in io.Reader, out io.Writer) prompt.Provider {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return prompt.NewHuhProvider()
	}
	return prompt.NewLineProvider(in, out)
}

func runScaffold(ctx context.Context, deps Deps) error {
	opts := config.LoadOpts{WorkDir: deps.WorkDir}
	if deps.HomeDir != "" {
		opts.ConfigDir = paths.ConfigDir(deps.Env, deps.HomeDir)
	}
	defaults, err := config.Load(opts)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: defaults.LogLevel}))
	if defaults.ConfigFile != "" {
		logger.Debug("loaded config file", "path", defaults.ConfigFile)
	}

	gitVersion, err := git.CheckInstalled(ctx, deps.Runner)
	if err != nil {
		return err
	}
	logger.Debug("git found", "version", gitVersion)

	out := deps.Stdout
	fmt.Fprintln(out, render.Banner("GitHub Project Cloner", "frontend . backend . Supabase"))

	cfg, err := prompt.Collect(deps.Provider, defaults)
	if err != nil {
		return err
	}

	layout := cfg.Layout()
	kind, err := fs.Kind(deps.FS, layout.Root)
	if err != nil {
		return errors.WrapWithDetails(errors.EDirCreateFailed, "failed to inspect project root", err,
			map[string]string{"path": layout.Root})
	}
	if kind == fs.KindDir {
		ok, err := prompt.ConfirmExisting(deps.Provider, layout.Root)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "  aborted")
			return nil
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Section("Scaffolding"))
	fmt.Fprintln(out)

	scaffolder := project.NewScaffolder(deps.FS, deps.Cloner, logger)
	report, err := scaffolder.Scaffold(ctx, cfg)
	render.WriteReport(out, report)
	if err != nil {
		return err
	}

	render.WriteDone(out, report, cfg.FrontendURL, cfg.BackendURL)
	return nil
}
