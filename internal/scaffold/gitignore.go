package scaffold

import (
	"os"
	"path/filepath"

	"github.com/NielsdaWheelz/stackup/internal/fs"
)

// GitignoreFile is the ignore file name managed by EnsureIgnored.
const GitignoreFile = ".gitignore"

// DefaultIgnoreEntry is the entry kept in the backend .gitignore.
const DefaultIgnoreEntry = ".env"

const gitignorePerm os.FileMode = 0644

// GitignoreResult indicates what happened to .gitignore.
type GitignoreResult string

const (
	GitignoreCreated   GitignoreResult = "created"
	GitignoreUpdated   GitignoreResult = "updated"
	GitignoreUnchanged GitignoreResult = "unchanged"
)

// EnsureIgnored ensures entry appears as a line of dir/.gitignore.
// Creates the file if missing. A line matches when it equals entry after trimming.
// When appending, a newline is inserted first if the file lacked a trailing one.
//
// Returns E_FILE_WRITE_FAILED on I/O failure.
func EnsureIgnored(fsys fs.FS, dir, entry string) (GitignoreResult, error) {
	path := filepath.Join(dir, GitignoreFile)

	content, exists, err := fs.ReadFileIfExists(fsys, path)
	if err != nil {
		return "", writeFailed("failed to read .gitignore", path, err)
	}

	merged, changed := MergeOrAppend(string(content), TrimmedEquals(entry), entry+"\n", "")
	if !changed {
		return GitignoreUnchanged, nil
	}

	perm := gitignorePerm
	if exists {
		if info, err := fsys.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
	}
	if err := fs.WriteFileAtomic(fsys, path, []byte(merged), perm); err != nil {
		return "", writeFailed("failed to update .gitignore", path, err)
	}

	if !exists {
		return GitignoreCreated, nil
	}
	return GitignoreUpdated, nil
}
