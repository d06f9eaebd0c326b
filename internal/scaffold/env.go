package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/stackup/internal/errors"
	"github.com/NielsdaWheelz/stackup/internal/fs"
)

// Env keys written into the backend env files, in file order.
const (
	KeySupabaseURL        = "SUPABASE_URL"
	KeySupabaseAnonKey    = "SUPABASE_ANON_KEY"
	KeySupabaseServiceKey = "SUPABASE_SERVICE_ROLE_KEY"
)

const (
	EnvFile        = ".env"
	EnvExampleFile = ".env.example"

	envPerm     os.FileMode = 0600
	examplePerm os.FileMode = 0644
)

// Placeholder values for .env.example. Never real secrets.
const (
	PlaceholderSupabaseURL = "https://xxxxxxxxxxxx.supabase.co"
	PlaceholderAnonKey     = "your_anon_key"
	PlaceholderServiceKey  = "your_service_role_key"
)

// Credentials are the Supabase values written to .env. Opaque; never validated.
type Credentials struct {
	URL        string
	AnonKey    string
	ServiceKey string
}

// EnvBlock renders the credentials block: three KEY=VALUE lines, each newline-terminated.
func EnvBlock(c Credentials) string {
	var b strings.Builder
	for _, kv := range [][2]string{
		{KeySupabaseURL, c.URL},
		{KeySupabaseAnonKey, c.AnonKey},
		{KeySupabaseServiceKey, c.ServiceKey},
	} {
		b.WriteString(kv[0] + "=" + kv[1] + "\n")
	}
	return b.String()
}

// ExampleBlock is the .env.example content.
func ExampleBlock() string {
	return EnvBlock(Credentials{
		URL:        PlaceholderSupabaseURL,
		AnonKey:    PlaceholderAnonKey,
		ServiceKey: PlaceholderServiceKey,
	})
}

// EnvState describes what WriteEnv did to .env.
type EnvState string

const (
	EnvCreated   EnvState = "created"
	EnvAppended  EnvState = "appended"
	EnvUnchanged EnvState = "unchanged"
)

// EnvResult reports the outcome of WriteEnv.
type EnvResult struct {
	Env            EnvState
	ExampleWritten bool
}

// WriteEnv merges the credentials block into dir/.env and (re)writes dir/.env.example.
//
// .env rules:
//   - missing: created with exactly the three SUPABASE_* lines
//   - already assigns SUPABASE_URL: left byte-identical
//   - otherwise: existing content kept verbatim, blank line, then the block
//
// Returns E_FILE_WRITE_FAILED on any I/O failure. .env.example is written even
// when .env fails; the first error is returned.
func WriteEnv(fsys fs.FS, dir string, creds Credentials) (EnvResult, error) {
	var result EnvResult

	state, envErr := mergeEnv(fsys, filepath.Join(dir, EnvFile), creds)
	result.Env = state

	examplePath := filepath.Join(dir, EnvExampleFile)
	if err := fs.WriteFileAtomic(fsys, examplePath, []byte(ExampleBlock()), examplePerm); err != nil {
		if envErr == nil {
			return result, writeFailed("failed to write .env.example", examplePath, err)
		}
		return result, envErr
	}
	result.ExampleWritten = true

	return result, envErr
}

func mergeEnv(fsys fs.FS, path string, creds Credentials) (EnvState, error) {
	existing, exists, err := fs.ReadFileIfExists(fsys, path)
	if err != nil {
		return "", writeFailed("failed to read .env", path, err)
	}

	content, changed := MergeOrAppend(string(existing), AssignsKey(KeySupabaseURL), EnvBlock(creds), "\n")
	if !changed {
		return EnvUnchanged, nil
	}

	perm := envPerm
	if exists {
		if info, err := fsys.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
	}
	if err := fs.WriteFileAtomic(fsys, path, []byte(content), perm); err != nil {
		return "", writeFailed("failed to write .env", path, err)
	}

	if !exists {
		return EnvCreated, nil
	}
	return EnvAppended, nil
}

func writeFailed(msg, path string, err error) error {
	return errors.WrapWithDetails(errors.EFileWriteFailed, msg, err, map[string]string{"path": path})
}
