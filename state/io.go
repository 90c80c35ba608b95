package state

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

// FullReader is config source access, a file system or a map in tests.
type FullReader interface {
	Normalize(name string) string
	// nil,nil = not found
	ReadAll(name string) ([]byte, error)
}

type OsFullReader struct {
	base string
}

func NewOsFullReader() *OsFullReader { return &OsFullReader{} }

func (self *OsFullReader) SetBase(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		// only fails when working directory is gone
		panic(errors.Annotatef(err, "filepath.Abs() path=%s", path))
	}
	self.base = abs
}

func (self *OsFullReader) Normalize(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(self.base, name)
}

func (self *OsFullReader) ReadAll(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return b, err
}

type MockFullReader map[string]string

func (MockFullReader) Normalize(name string) string { return filepath.Clean(name) }

func (self MockFullReader) ReadAll(name string) ([]byte, error) {
	if s, ok := self[name]; ok {
		return []byte(s), nil
	}
	return nil, nil
}
