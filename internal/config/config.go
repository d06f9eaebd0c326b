// Package config resolves prompt defaults and runtime settings for stackup.
//
// Precedence, highest first: environment variables (STACKUP_*, plus plain
// SUPABASE_URL and SUPABASE_ANON_KEY), the optional config file in the stackup
// config directory, a .env file in the working directory (Supabase keys only),
// built-in defaults.
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/NielsdaWheelz/stackup/internal/errors"
)

// EnvPrefix is the prefix for environment overrides (STACKUP_PROJECT_NAME, ...).
const EnvPrefix = "STACKUP"

// Config keys.
const (
	KeyProjectName     = "project_name"
	KeyOutputDir       = "output_dir"
	KeySupabaseURL     = "supabase_url"
	KeySupabaseAnonKey = "supabase_anon_key"
	KeyLogLevel        = "log_level"
)

const (
	DefaultProjectName = "my-app"
	DefaultOutputDir   = "."
	DefaultLogLevel    = "warn"
)

// Defaults are the values offered at each prompt plus runtime settings.
// The Supabase service role key is deliberately absent: it is always typed.
type Defaults struct {
	ProjectName     string
	OutputDir       string
	SupabaseURL     string
	SupabaseAnonKey string
	LogLevel        slog.Level

	// ConfigFile is the config file that was read, or "" if none.
	ConfigFile string
}

// LoadOpts controls where Load looks.
type LoadOpts struct {
	// ConfigDir is searched for config.{toml,yaml,yml,json}. Empty skips the file.
	ConfigDir string
	// WorkDir is searched for a .env providing SUPABASE_URL / SUPABASE_ANON_KEY. Empty skips it.
	WorkDir string
}

// Load resolves Defaults. Returns E_CONFIG if the config file or .env exists
// but cannot be parsed, or if log_level is not a slog level name.
func Load(opts LoadOpts) (Defaults, error) {
	v := viper.New()

	v.SetDefault(KeyProjectName, DefaultProjectName)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeySupabaseURL, "")
	v.SetDefault(KeySupabaseAnonKey, "")

	if opts.WorkDir != "" {
		dotenv, err := readDotenv(filepath.Join(opts.WorkDir, ".env"))
		if err != nil {
			return Defaults{}, err
		}
		if s := dotenv["SUPABASE_URL"]; s != "" {
			v.SetDefault(KeySupabaseURL, s)
		}
		if s := dotenv["SUPABASE_ANON_KEY"]; s != "" {
			v.SetDefault(KeySupabaseAnonKey, s)
		}
	}

	if opts.ConfigDir != "" {
		v.SetConfigName("config")
		v.AddConfigPath(opts.ConfigDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Defaults{}, apperrors.WrapWithDetails(apperrors.EConfig, "failed to read config file", err,
					map[string]string{"config_dir": opts.ConfigDir})
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Explicit bindings replace the prefixed name, so both are listed.
	if err := v.BindEnv(KeySupabaseURL, EnvPrefix+"_SUPABASE_URL", "SUPABASE_URL"); err != nil {
		return Defaults{}, apperrors.Wrap(apperrors.EInternal, "failed to bind env", err)
	}
	if err := v.BindEnv(KeySupabaseAnonKey, EnvPrefix+"_SUPABASE_ANON_KEY", "SUPABASE_ANON_KEY"); err != nil {
		return Defaults{}, apperrors.Wrap(apperrors.EInternal, "failed to bind env", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Defaults{}, apperrors.WrapWithDetails(apperrors.EConfig, "invalid log_level", err,
			map[string]string{"log_level": v.GetString(KeyLogLevel)})
	}

	return Defaults{
		ProjectName:     v.GetString(KeyProjectName),
		OutputDir:       v.GetString(KeyOutputDir),
		SupabaseURL:     v.GetString(KeySupabaseURL),
		SupabaseAnonKey: v.GetString(KeySupabaseAnonKey),
		LogLevel:        level,
		ConfigFile:      v.ConfigFileUsed(),
	}, nil
}

// readDotenv parses path, returning an empty map when it does not exist.
func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, apperrors.WrapWithDetails(apperrors.EConfig, "failed to parse .env", err,
			map[string]string{"path": path})
	}
	return values, nil
}
