package project

import (
	"context"
	"log/slog"

	"github.com/NielsdaWheelz/stackup/internal/errors"
	"github.com/NielsdaWheelz/stackup/internal/fs"
	"github.com/NielsdaWheelz/stackup/internal/git"
	"github.com/NielsdaWheelz/stackup/internal/repourl"
	"github.com/NielsdaWheelz/stackup/internal/scaffold"
)

// Warning is a non-fatal problem recorded during a run.
type Warning struct {
	Code    errors.Code
	Message string
}

// Step names used in Report.Steps.
const (
	StepRoot      = "root"
	StepFrontend  = "frontend"
	StepBackend   = "backend"
	StepEnv       = "env"
	StepGitignore = "gitignore"
	StepReadme    = "readme"
)

// Report describes what a scaffold run did. Populated incrementally, so a
// failed run still shows the steps that completed.
type Report struct {
	Layout Layout

	Frontend repourl.Ref
	Backend  repourl.Ref

	FrontendClone git.CloneResult
	BackendClone  git.CloneResult

	Env       scaffold.EnvResult
	Gitignore scaffold.GitignoreResult

	ReadmePath string

	// Steps lists completed step names in order.
	Steps []string
	// Failed lists steps that were attempted and failed.
	Failed   []string
	Warnings []Warning
}

func (r *Report) done(step string) {
	r.Steps = append(r.Steps, step)
}

func (r *Report) fail(step string) {
	r.Failed = append(r.Failed, step)
}

func (r *Report) warn(err error) {
	r.Warnings = append(r.Warnings, Warning{Code: errors.GetCode(err), Message: err.Error()})
}

// Scaffolder runs the scaffold pipeline.
type Scaffolder struct {
	FS     fs.FS
	Cloner git.Cloner
	Logger *slog.Logger
}

// NewScaffolder creates a Scaffolder. A nil logger discards output.
func NewScaffolder(fsys fs.FS, cloner git.Cloner, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scaffolder{FS: fsys, Cloner: cloner, Logger: logger}
}

// Scaffold runs the pipeline for cfg. Steps, strictly in order:
//  1. validate cfg, normalize both repo URLs, create the root directory
//  2. clone frontend into root/frontend (skipped if the directory exists)
//  3. clone backend into root/backend (skipped if the directory exists)
//  4. write backend env files and ensure .env is git-ignored (always attempted)
//  5. write root/README.md (always overwritten)
//
// A canceled ctx stops the run with E_ABORTED before steps 4 and 5.
// Errors from steps 1-3 and 5 abort the run. File-write errors in step 4 are
// recorded as warnings and the run continues to the README; the first of them
// is then returned so the caller exits non-zero. Completed steps are never
// rolled back.
func (s *Scaffolder) Scaffold(ctx context.Context, cfg Config) (*Report, error) {
	report := &Report{Layout: cfg.Layout()}
	layout := report.Layout
	log := s.Logger.With("project", cfg.Name)

	if err := cfg.Validate(); err != nil {
		return report, err
	}

	var err error
	if report.Frontend, err = repourl.Normalize(cfg.FrontendURL); err != nil {
		return report, err
	}
	if report.Backend, err = repourl.Normalize(cfg.BackendURL); err != nil {
		return report, err
	}
	if report.Frontend.CloneURL == report.Backend.CloneURL {
		log.Warn("frontend and backend point at the same repository", "clone_url", report.Frontend.CloneURL)
		report.Warnings = append(report.Warnings, Warning{
			Message: "frontend and backend use the same repository: " + report.Frontend.CloneURL,
		})
	}

	if err := s.createRoot(layout.Root); err != nil {
		report.fail(StepRoot)
		return report, err
	}
	log.Debug("project root ready", "path", layout.Root)
	report.done(StepRoot)

	if report.FrontendClone, err = s.clone(ctx, log, report.Frontend, layout.FrontendDir); err != nil {
		report.fail(StepFrontend)
		return report, err
	}
	report.done(StepFrontend)

	if report.BackendClone, err = s.clone(ctx, log, report.Backend, layout.BackendDir); err != nil {
		report.fail(StepBackend)
		return report, err
	}
	report.done(StepBackend)

	if err := ctx.Err(); err != nil {
		return report, errors.Wrap(errors.EAborted, "interrupted before writing project files", err)
	}

	var firstWriteErr error
	recordWriteErr := func(step string, err error) {
		log.Warn("file write failed; continuing", "step", step, "error", err)
		report.fail(step)
		report.warn(err)
		if firstWriteErr == nil {
			firstWriteErr = err
		}
	}

	creds := scaffold.Credentials{
		URL:        cfg.SupabaseURL,
		AnonKey:    cfg.SupabaseAnonKey,
		ServiceKey: cfg.SupabaseServiceKey,
	}
	if report.Env, err = scaffold.WriteEnv(s.FS, layout.BackendDir, creds); err != nil {
		recordWriteErr(StepEnv, err)
	} else {
		log.Debug("env files written", "env", report.Env.Env)
		report.done(StepEnv)
	}

	if report.Gitignore, err = scaffold.EnsureIgnored(s.FS, layout.BackendDir, scaffold.DefaultIgnoreEntry); err != nil {
		recordWriteErr(StepGitignore, err)
	} else {
		log.Debug("gitignore checked", "result", report.Gitignore)
		report.done(StepGitignore)
	}

	if err := ctx.Err(); err != nil {
		return report, errors.Wrap(errors.EAborted, "interrupted before writing README", err)
	}

	report.ReadmePath, err = scaffold.WriteReadme(s.FS, layout.Root, scaffold.ReadmeData{
		ProjectName: cfg.Name,
		FrontendURL: cfg.FrontendURL,
		BackendURL:  cfg.BackendURL,
		FrontendDir: FrontendDirName,
		BackendDir:  BackendDirName,
	})
	if err != nil {
		report.fail(StepReadme)
		return report, err
	}
	log.Debug("readme written", "path", report.ReadmePath)
	report.done(StepReadme)

	return report, firstWriteErr
}

// createRoot creates root (and parents). An existing directory is accepted.
func (s *Scaffolder) createRoot(root string) error {
	kind, err := fs.Kind(s.FS, root)
	if err != nil {
		return errors.WrapWithDetails(errors.EDirCreateFailed, "failed to inspect project root", err,
			map[string]string{"path": root})
	}
	if kind == fs.KindFile {
		return errors.NewWithDetails(errors.EDirCreateFailed, "project root exists and is not a directory",
			map[string]string{"path": root})
	}
	if err := s.FS.MkdirAll(root, 0755); err != nil {
		return errors.WrapWithDetails(errors.EDirCreateFailed, "failed to create project root", err,
			map[string]string{"path": root})
	}
	return nil
}

func (s *Scaffolder) clone(ctx context.Context, log *slog.Logger, ref repourl.Ref, dest string) (git.CloneResult, error) {
	log.Debug("cloning", "repo", ref.Slug(), "input_form", ref.Shape, "url", ref.CloneURL, "dest", dest)
	result, err := s.Cloner.Clone(ctx, ref, dest)
	if err != nil {
		return result, err
	}
	if result.Skipped {
		log.Info("destination exists; clone skipped", "dest", dest)
	}
	return result, nil
}
