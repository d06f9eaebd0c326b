// Package project holds the scaffold pipeline: project configuration, derived
// on-disk layout, and the orchestrator that clones and writes files.
package project

import (
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/stackup/internal/errors"
)

// Fixed destination folder names inside the project root.
const (
	FrontendDirName = "frontend"
	BackendDirName  = "backend"
)

// Config is the full input to a scaffold run. Built once by the prompt layer.
type Config struct {
	Name               string
	OutputDir          string
	FrontendURL        string
	BackendURL         string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
}

// Validate returns E_MISSING_INPUT naming the first empty field.
// The project name must also be a single path element.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"project name", c.Name},
		{"output directory", c.OutputDir},
		{"frontend repo URL", c.FrontendURL},
		{"backend repo URL", c.BackendURL},
		{"Supabase URL", c.SupabaseURL},
		{"Supabase anon key", c.SupabaseAnonKey},
		{"Supabase service role key", c.SupabaseServiceKey},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return errors.NewWithDetails(errors.EMissingInput, f.name+" is required", map[string]string{"field": f.name})
		}
	}

	if c.Name == "." || c.Name == ".." || strings.ContainsAny(c.Name, `/\`) {
		return errors.NewWithDetails(errors.EMissingInput, "project name must be a plain folder name",
			map[string]string{"field": "project name", "value": c.Name})
	}
	return nil
}

// Layout is the on-disk shape of a project. Derived from Config; never stored.
type Layout struct {
	Root        string
	FrontendDir string
	BackendDir  string
}

// Layout derives the project paths: Root = OutputDir/Name.
func (c Config) Layout() Layout {
	root := filepath.Join(c.OutputDir, c.Name)
	return Layout{
		Root:        root,
		FrontendDir: filepath.Join(root, FrontendDirName),
		BackendDir:  filepath.Join(root, BackendDirName),
	}
}
