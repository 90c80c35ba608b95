package storage

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"
)

// Dir is Backend rooted at a local directory.
type Dir struct {
	root     string
	readonly bool
	closed   bool
}

var _ Backend = new(Dir)

func OpenDir(root string, readonly bool) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Annotate(err, "storage root")
	}
	st, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Annotate(err, "storage root")
	}
	if !st.IsDir() {
		return nil, errors.NotValidf("storage root=%s not a directory", abs)
	}
	return &Dir{root: abs, readonly: readonly}, nil
}

// resolve rejects absolute paths and any ".." component.
func (self *Dir) resolve(p string) (string, error) {
	if self.closed {
		return "", errors.New("storage closed")
	}
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return "", errors.NotValidf("path=%q", p)
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", errors.NotValidf("path=%q", p)
		}
	}
	return filepath.Join(self.root, filepath.FromSlash(path.Clean("/" + p))), nil
}

func (self *Dir) writable() error {
	if self.readonly {
		return errors.Forbiddenf("storage readonly")
	}
	return nil
}

func mapError(err error, p string) error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return errors.NewNotFound(err, p)
	}
	return errors.Annotate(err, p)
}

func (self *Dir) Close() error {
	self.closed = true
	return nil
}

func (self *Dir) Ready() bool { return !self.closed }

func (self *Dir) Enumerate(dir string, fn EnumerateFunc) error {
	full, err := self.resolve(dir)
	if err != nil {
		return err
	}
	f, err := os.Open(full)
	if err != nil {
		return mapError(err, dir)
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return mapError(err, dir)
	}
	sort.Strings(names)
	for _, name := range names {
		switch fn(dir, name) {
		case EnumerationContinue:
		case EnumerationSuccess:
			return nil
		default:
			return errors.Errorf("enumerate dir=%s stopped at name=%s", dir, name)
		}
	}
	return nil
}

func (self *Dir) Info(p string) (PathInfo, error) {
	full, err := self.resolve(p)
	if err != nil {
		return PathInfo{}, err
	}
	var st unix.Stat_t
	if err := unix.Stat(full, &st); err != nil {
		if err == unix.ENOENT {
			return PathInfo{}, errors.NotFoundf("path=%q", p)
		}
		return PathInfo{}, errors.Annotate(err, p)
	}
	info := PathInfo{
		Size:       uint64(st.Size),
		CreateTime: unix.TimespecToNsec(st.Ctim),
		ModifyTime: unix.TimespecToNsec(st.Mtim),
		AccessTime: unix.TimespecToNsec(st.Atim),
	}
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		info.Type = PathTypeFile
	case unix.S_IFDIR:
		info.Type = PathTypeDirectory
		info.Size = 0
	default:
		info.Type = PathTypeOther
	}
	return info, nil
}

// ReadFile fills dst exactly, file size must equal len(dst).
func (self *Dir) ReadFile(p string, dst []byte) error {
	full, err := self.resolve(p)
	if err != nil {
		return err
	}
	f, err := os.Open(full)
	if err != nil {
		return mapError(err, p)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return mapError(err, p)
	}
	if st.Size() != int64(len(dst)) {
		return errors.NotValidf("read %s size=%d buffer=%d", p, st.Size(), len(dst))
	}
	if _, err := io.ReadFull(f, dst); err != nil {
		return errors.Annotatef(err, "read %s", p)
	}
	return nil
}

func (self *Dir) WriteFile(p string, src []byte) error {
	if err := self.writable(); err != nil {
		return err
	}
	full, err := self.resolve(p)
	if err != nil {
		return err
	}
	return mapError(os.WriteFile(full, src, 0644), p)
}

// Mkdir creates parents like SDL_CreateDirectory.
func (self *Dir) Mkdir(p string) error {
	if err := self.writable(); err != nil {
		return err
	}
	full, err := self.resolve(p)
	if err != nil {
		return err
	}
	return mapError(os.MkdirAll(full, 0755), p)
}

func (self *Dir) Remove(p string) error {
	if err := self.writable(); err != nil {
		return err
	}
	full, err := self.resolve(p)
	if err != nil {
		return err
	}
	return mapError(os.Remove(full), p)
}

func (self *Dir) Rename(oldpath, newpath string) error {
	if err := self.writable(); err != nil {
		return err
	}
	from, err := self.resolve(oldpath)
	if err != nil {
		return err
	}
	to, err := self.resolve(newpath)
	if err != nil {
		return err
	}
	return mapError(os.Rename(from, to), oldpath)
}

func (self *Dir) Copy(oldpath, newpath string) error {
	if err := self.writable(); err != nil {
		return err
	}
	from, err := self.resolve(oldpath)
	if err != nil {
		return err
	}
	to, err := self.resolve(newpath)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(from)
	if err != nil {
		return mapError(err, oldpath)
	}
	return mapError(os.WriteFile(to, b, 0644), newpath)
}

func (self *Dir) SpaceRemaining() uint64 {
	var st unix.Statfs_t
	if self.closed || unix.Statfs(self.root, &st) != nil {
		return 0
	}
	return st.Bavail * uint64(st.Bsize)
}
