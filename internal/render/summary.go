package render

import (
	"fmt"
	"io"

	"github.com/NielsdaWheelz/stackup/internal/git"
	"github.com/NielsdaWheelz/stackup/internal/project"
)

// StepLine renders "  ✔  msg" style progress lines.
func StepLine(icon, msg string) string {
	return "  " + icon + "  " + msg
}

func cloneLine(label, dir, ref string, r git.CloneResult) string {
	if r.Skipped {
		return StepLine(Info(IconInfo), fmt.Sprintf("%s/ already exists; clone skipped", dir))
	}
	return StepLine(Pass(IconPass), fmt.Sprintf("%s repo cloned from %s", label, Info(ref)))
}

// WriteReport writes the per-step outcome of a scaffold run. Steps that did not
// complete are omitted and failed steps are marked, so a partial report shows
// exactly what happened.
func WriteReport(w io.Writer, r *project.Report) {
	if r == nil {
		return
	}
	done := make(map[string]bool, len(r.Steps))
	for _, s := range r.Steps {
		done[s] = true
	}

	if done[project.StepRoot] {
		fmt.Fprintln(w, StepLine(Pass(IconPass), "project root "+r.Layout.Root))
	}
	if done[project.StepFrontend] {
		fmt.Fprintln(w, cloneLine("Frontend", project.FrontendDirName, r.Frontend.CloneURL, r.FrontendClone))
	}
	if done[project.StepBackend] {
		fmt.Fprintln(w, cloneLine("Backend", project.BackendDirName, r.Backend.CloneURL, r.BackendClone))
	}
	if done[project.StepEnv] {
		fmt.Fprintln(w, StepLine(Pass(IconPass), fmt.Sprintf(".env %s in backend/", r.Env.Env)))
	}
	if r.Env.ExampleWritten {
		fmt.Fprintln(w, StepLine(Pass(IconPass), ".env.example written in backend/"))
	}
	if done[project.StepGitignore] {
		fmt.Fprintln(w, StepLine(Pass(IconPass), fmt.Sprintf(".gitignore %s in backend/", r.Gitignore)))
	}
	if done[project.StepReadme] {
		fmt.Fprintln(w, StepLine(Pass(IconPass), "README.md written in project root"))
	}
	for _, step := range r.Failed {
		fmt.Fprintln(w, StepLine(Fail(IconFail), step+" step failed"))
	}
	for _, warning := range r.Warnings {
		fmt.Fprintln(w, StepLine(Warn(IconWarn), warning.Message))
	}
}

// WriteDone writes the closing summary after a successful run.
func WriteDone(w io.Writer, r *project.Report, frontendRaw, backendRaw string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Banner(Pass("Project ready!")))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  location:   %s\n", r.Layout.Root)
	fmt.Fprintf(w, "  frontend/   <- %s\n", frontendRaw)
	fmt.Fprintf(w, "  backend/    <- %s\n", backendRaw)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+Warn(IconWarn+"  Never commit backend/.env; it contains secret keys."))
}
