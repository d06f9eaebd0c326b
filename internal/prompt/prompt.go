// Package prompt collects a project.Config from the user.
//
// Collect and ConfirmExisting only talk to a Provider, so the scaffold
// pipeline never reads a terminal directly and tests can script answers.
package prompt

import (
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/stackup/internal/config"
	"github.com/NielsdaWheelz/stackup/internal/errors"
	"github.com/NielsdaWheelz/stackup/internal/project"
	"github.com/NielsdaWheelz/stackup/internal/repourl"
)

// Question is a single free-text prompt.
type Question struct {
	Label   string
	Default string
	// Secret input is not echoed.
	Secret   bool
	Required bool
	// Validate, if set, checks the answer after defaults are applied.
	Validate func(string) error
}

// Provider asks questions. Implementations return the raw answer (possibly
// empty); defaults and validation are applied by the caller.
type Provider interface {
	Ask(q Question) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// Sectioner is implemented by providers that can print section headers.
type Sectioner interface {
	Section(title, hint string)
}

func validateRepoURL(s string) error {
	_, err := repourl.Normalize(s)
	return err
}

// Questions returns the prompts in the order they are asked.
func Questions(d config.Defaults) []Question {
	return []Question{
		{Label: "Project name", Default: d.ProjectName, Required: true},
		{Label: "Where to create the project", Default: d.OutputDir, Required: true},
		{Label: "Frontend repo URL", Required: true, Validate: validateRepoURL},
		{Label: "Backend repo URL", Required: true, Validate: validateRepoURL},
		{Label: "Supabase project URL (https://xxxx.supabase.co)", Default: d.SupabaseURL, Required: true},
		{Label: "Supabase anon / public key", Default: d.SupabaseAnonKey, Required: true},
		{Label: "Supabase service role key", Secret: true, Required: true},
	}
}

// Ask asks q through p and applies trimming, the default, Required and Validate.
func Ask(p Provider, q Question) (string, error) {
	answer, err := p.Ask(q)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = q.Default
	}
	if answer == "" && q.Required {
		return "", errors.NewWithDetails(errors.EMissingInput, q.Label+" is required",
			map[string]string{"field": q.Label})
	}
	if q.Validate != nil && answer != "" {
		if err := q.Validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

// Collect asks every question in order and builds the project config.
// OutputDir is made absolute.
func Collect(p Provider, d config.Defaults) (project.Config, error) {
	qs := Questions(d)
	answers := make([]string, len(qs))

	sec, _ := p.(Sectioner)
	for i, q := range qs {
		if sec != nil {
			switch i {
			case 0:
				sec.Section("Project Setup", "")
			case 2:
				sec.Section("GitHub Repository URLs",
					"Accepted formats: https://github.com/user/repo, git@github.com:user/repo.git, user/repo")
			case 4:
				sec.Section("Supabase Configuration", "Find these in your Supabase project -> Settings -> API")
			}
		}
		a, err := Ask(p, q)
		if err != nil {
			return project.Config{}, err
		}
		answers[i] = a
	}

	outputDir, err := filepath.Abs(answers[1])
	if err != nil {
		return project.Config{}, errors.Wrap(errors.EInternal, "failed to resolve output directory", err)
	}

	return project.Config{
		Name:               answers[0],
		OutputDir:          outputDir,
		FrontendURL:        answers[2],
		BackendURL:         answers[3],
		SupabaseURL:        answers[4],
		SupabaseAnonKey:    answers[5],
		SupabaseServiceKey: answers[6],
	}, nil
}

// ConfirmExisting asks whether to continue into an existing project root.
// Defaults to no.
func ConfirmExisting(p Provider, root string) (bool, error) {
	return p.Confirm(root+" already exists. Continue and place repos inside it?", false)
}
