package fs

import (
	"os"
	"path/filepath"
)

const tempPattern = ".stackup-tmp-*"

// WriteFileAtomic writes data to path atomically using a temp file + rename.
// The temp file is created next to path so the rename stays on one filesystem.
// On failure the original file (if any) is left unchanged.
// If path is a symlink, the link is kept and its target is replaced.
// The caller must ensure the parent directory exists.
func WriteFileAtomic(fsys FS, path string, data []byte, perm os.FileMode) error {
	path, err := resolveTarget(fsys, path)
	if err != nil {
		return err
	}

	tmpPath, w, err := fsys.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return err
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// resolveTarget follows symlinks at path. A missing path is returned unchanged.
func resolveTarget(fsys FS, path string) (string, error) {
	resolved, err := fsys.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", err
	}
	return resolved, nil
}

// PathKind describes what, if anything, exists at a path.
type PathKind int

const (
	KindMissing PathKind = iota
	KindDir
	KindFile
)

// Kind stats path and reports whether it is missing, a directory, or something else.
// Errors other than "not exist" are returned as-is.
func Kind(fsys FS, path string) (PathKind, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return KindMissing, nil
		}
		return KindMissing, err
	}
	if info.IsDir() {
		return KindDir, nil
	}
	return KindFile, nil
}
