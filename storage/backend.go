package storage

import (
	"path"
	"strings"

	"github.com/juju/errors"
)

type EnumerateFunc func(dir, name string) EnumerationResult

// Backend mirrors SDL storage operations. Paths use '/' and are relative to backend root.
type Backend interface {
	Close() error
	Ready() bool
	Enumerate(dir string, fn EnumerateFunc) error
	Info(p string) (PathInfo, error)
	ReadFile(p string, dst []byte) error
	WriteFile(p string, src []byte) error
	Mkdir(p string) error
	Remove(p string) error
	Rename(oldpath, newpath string) error
	Copy(oldpath, newpath string) error
	SpaceRemaining() uint64
}

// FileSize is SDL_GetStorageFileSize.
func FileSize(b Backend, p string) (uint64, error) {
	info, err := b.Info(p)
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

// Glob walks dir recursively and returns paths matching pattern, relative to dir.
// Empty pattern matches everything.
func Glob(b Backend, dir, pattern string, flags GlobFlags) ([]string, error) {
	if pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, errors.NotValidf("pattern=%q", pattern)
		}
	}
	fold := func(s string) string { return s }
	if flags&GlobCaseInsensitive != 0 {
		fold = strings.ToLower
		pattern = fold(pattern)
	}

	var out []string
	var walk func(rel string) error
	walk = func(rel string) error {
		var subdirs []string
		err := b.Enumerate(path.Join(dir, rel), func(_, name string) EnumerationResult {
			full := path.Join(rel, name)
			if pattern == "" {
				out = append(out, full)
			} else if ok, _ := path.Match(pattern, fold(full)); ok {
				out = append(out, full)
			}
			if info, err := b.Info(path.Join(dir, full)); err == nil && info.Type == PathTypeDirectory {
				subdirs = append(subdirs, full)
			}
			return EnumerationContinue
		})
		if err != nil {
			return err
		}
		for _, sub := range subdirs {
			if err := walk(sub); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(""); err != nil {
		return nil, errors.Annotatef(err, "glob dir=%s", dir)
	}
	return out, nil
}
