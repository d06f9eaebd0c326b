package paths

import (
	"path/filepath"
	"testing"
)

// mapEnv is a simple map-backed Env implementation for testing.
type mapEnv map[string]string

func (m mapEnv) Get(key string) string {
	return m[key]
}

func TestConfigDir(t *testing.T) {
	home := filepath.FromSlash("/home/testuser")

	tests := []struct {
		name     string
		env      mapEnv
		isDarwin bool
		want     string
	}{
		{
			name:     "STACKUP_CONFIG_DIR override (darwin)",
			env:      mapEnv{"STACKUP_CONFIG_DIR": "/custom/config"},
			isDarwin: true,
			want:     "/custom/config",
		},
		{
			name:     "STACKUP_CONFIG_DIR override (linux)",
			env:      mapEnv{"STACKUP_CONFIG_DIR": "/custom/config"},
			isDarwin: false,
			want:     "/custom/config",
		},
		{
			name:     "darwin default",
			env:      mapEnv{},
			isDarwin: true,
			want:     filepath.FromSlash("/home/testuser/Library/Preferences/stackup"),
		},
		{
			name:     "darwin ignores XDG",
			env:      mapEnv{"XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: true,
			want:     filepath.FromSlash("/home/testuser/Library/Preferences/stackup"),
		},
		{
			name:     "XDG_CONFIG_HOME fallback (linux)",
			env:      mapEnv{"XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: false,
			want:     filepath.FromSlash("/xdg/config/stackup"),
		},
		{
			name:     "default fallback (linux)",
			env:      mapEnv{},
			isDarwin: false,
			want:     filepath.FromSlash("/home/testuser/.config/stackup"),
		},
		{
			name:     "override takes precedence over XDG",
			env:      mapEnv{"STACKUP_CONFIG_DIR": "/override", "XDG_CONFIG_HOME": "/xdg/config"},
			isDarwin: false,
			want:     "/override",
		},
		{
			name:     "tilde is literal",
			env:      mapEnv{"STACKUP_CONFIG_DIR": "~/cfg"},
			isDarwin: false,
			want:     "~/cfg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfigDirWithOS(tt.env, home, tt.isDarwin)
			if got != tt.want {
				t.Errorf("ConfigDir = %q, want %q", got, tt.want)
			}
		})
	}
}
