package prompt

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/stackup/internal/config"
	"github.com/NielsdaWheelz/stackup/internal/errors"
)

func defaults() config.Defaults {
	return config.Defaults{ProjectName: "my-app", OutputDir: "."}
}

func lines(ss ...string) *strings.Reader {
	return strings.NewReader(strings.Join(ss, "\n") + "\n")
}

func TestCollect_AllAnswers(t *testing.T) {
	out := t.TempDir()
	in := lines("demo", out, "user/fe", "https://github.com/user/be.git", "https://x.supabase.co", "a", "s")
	var w bytes.Buffer

	cfg, err := Collect(NewLineProvider(in, &w), defaults())
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, out, cfg.OutputDir)
	assert.Equal(t, "user/fe", cfg.FrontendURL)
	assert.Equal(t, "https://github.com/user/be.git", cfg.BackendURL)
	assert.Equal(t, "https://x.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "a", cfg.SupabaseAnonKey)
	assert.Equal(t, "s", cfg.SupabaseServiceKey)

	prompts := w.String()
	assert.Contains(t, prompts, "Project name")
	assert.Contains(t, prompts, "[my-app]")
	assert.Contains(t, prompts, "Supabase service role key")
	assert.Contains(t, prompts, "GitHub Repository URLs")
}

func TestCollect_Defaults(t *testing.T) {
	d := defaults()
	d.SupabaseURL = "https://env.supabase.co"
	d.SupabaseAnonKey = "anon-from-env"
	in := lines("", "", "user/fe", "user/be", "", "", "s")

	cfg, err := Collect(NewLineProvider(in, &bytes.Buffer{}), d)
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, "my-app", cfg.Name)
	assert.Equal(t, wd, cfg.OutputDir)
	assert.Equal(t, "https://env.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "anon-from-env", cfg.SupabaseAnonKey)
}

func TestCollect_MissingRequired(t *testing.T) {
	in := lines("demo", ".", "")

	_, err := Collect(NewLineProvider(in, &bytes.Buffer{}), defaults())
	assert.Equal(t, errors.EMissingInput, errors.GetCode(err))
}

func TestCollect_InvalidRepoURL(t *testing.T) {
	in := lines("demo", ".", "not a url")

	_, err := Collect(NewLineProvider(in, &bytes.Buffer{}), defaults())
	assert.Equal(t, errors.EInvalidRepoURL, errors.GetCode(err))
}

func TestCollect_EOF(t *testing.T) {
	_, err := Collect(NewLineProvider(strings.NewReader(""), &bytes.Buffer{}), defaults())
	assert.Equal(t, errors.EMissingInput, errors.GetCode(err))
}

func TestLineProvider_SecretUsesReadPassword(t *testing.T) {
	var w bytes.Buffer
	p := NewLineProvider(strings.NewReader("visible\n"), &w)
	p.fd = 7
	var gotFD int
	p.readPassword = func(fd int) ([]byte, error) {
		gotFD = fd
		return []byte("hidden"), nil
	}

	got, err := p.Ask(Question{Label: "Secret", Secret: true, Default: "never-shown"})
	require.NoError(t, err)
	assert.Equal(t, "hidden", got)
	assert.Equal(t, 7, gotFD)
	assert.NotContains(t, w.String(), "never-shown")
}

func TestLineProvider_SecretFromPipe(t *testing.T) {
	p := NewLineProvider(strings.NewReader("piped-secret\r\n"), &bytes.Buffer{})

	got, err := p.Ask(Question{Label: "Secret", Secret: true})
	require.NoError(t, err)
	assert.Equal(t, "piped-secret", got)
}

func TestConfirmExisting(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var w bytes.Buffer
			got, err := ConfirmExisting(NewLineProvider(strings.NewReader(tt.input), &w), "/work/demo")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, w.String(), "/work/demo already exists")
			assert.Contains(t, w.String(), "[y/N]")
		})
	}
}

func TestInlineValidate(t *testing.T) {
	q := Question{Label: "Frontend repo URL", Required: true, Validate: validateRepoURL}

	assert.NoError(t, inlineValidate(q, "user/fe"))
	assert.Error(t, inlineValidate(q, "not a url"))
	assert.EqualError(t, inlineValidate(q, ""), "Frontend repo URL is required")

	withDefault := Question{Label: "Project name", Default: "my-app", Required: true}
	assert.NoError(t, inlineValidate(withDefault, ""))
}
