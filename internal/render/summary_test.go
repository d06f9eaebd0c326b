package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NielsdaWheelz/stackup/internal/git"
	"github.com/NielsdaWheelz/stackup/internal/project"
	"github.com/NielsdaWheelz/stackup/internal/repourl"
	"github.com/NielsdaWheelz/stackup/internal/scaffold"
)

func fullReport() *project.Report {
	return &project.Report{
		Layout:        project.Layout{Root: "/work/demo"},
		Frontend:      repourl.Ref{CloneURL: "https://github.com/user/fe.git"},
		Backend:       repourl.Ref{CloneURL: "https://github.com/user/be.git"},
		FrontendClone: git.CloneResult{Skipped: false},
		BackendClone:  git.CloneResult{Skipped: true},
		Env:           scaffold.EnvResult{Env: scaffold.EnvAppended, ExampleWritten: true},
		Gitignore:     scaffold.GitignoreUnchanged,
		Steps: []string{
			project.StepRoot, project.StepFrontend, project.StepBackend,
			project.StepEnv, project.StepGitignore, project.StepReadme,
		},
	}
}

func TestWriteReport_Full(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, fullReport())
	out := buf.String()

	assert.Contains(t, out, "project root /work/demo")
	assert.Contains(t, out, "Frontend repo cloned from")
	assert.Contains(t, out, "https://github.com/user/fe.git")
	assert.Contains(t, out, "backend/ already exists; clone skipped")
	assert.Contains(t, out, ".env appended in backend/")
	assert.Contains(t, out, ".env.example written")
	assert.Contains(t, out, ".gitignore unchanged")
	assert.Contains(t, out, "README.md written")
}

func TestWriteReport_Partial(t *testing.T) {
	r := fullReport()
	r.Steps = []string{project.StepRoot, project.StepFrontend}
	r.Warnings = []project.Warning{{Message: "frontend and backend use the same repository"}}

	var buf bytes.Buffer
	WriteReport(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "Frontend repo cloned")
	assert.NotContains(t, out, "Backend")
	assert.NotContains(t, out, "README.md")
	assert.Contains(t, out, "same repository")
}

func TestWriteReport_FailedStep(t *testing.T) {
	r := fullReport()
	r.Steps = []string{project.StepRoot, project.StepFrontend, project.StepBackend, project.StepGitignore, project.StepReadme}
	r.Failed = []string{project.StepEnv}
	r.Env = scaffold.EnvResult{ExampleWritten: true}

	var buf bytes.Buffer
	WriteReport(&buf, r)
	out := buf.String()

	assert.Contains(t, out, IconFail+"  env step failed")
	assert.Contains(t, out, ".env.example written")
}

func TestWriteReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteDone_UsesRawURLs(t *testing.T) {
	var buf bytes.Buffer
	WriteDone(&buf, fullReport(), "user/fe", "git@github.com:user/be.git")
	out := buf.String()

	assert.Contains(t, out, "Project ready!")
	assert.Contains(t, out, "frontend/   <- user/fe")
	assert.Contains(t, out, "backend/    <- git@github.com:user/be.git")
}

func TestSection(t *testing.T) {
	s := Section("Project Setup")
	assert.True(t, strings.HasPrefix(s, "── Project Setup "), s)
	assert.Contains(t, Section(strings.Repeat("x", 80)), strings.Repeat("x", 80))
}
