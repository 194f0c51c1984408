package filesystem

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/skillcoder/minecraft-compose/internal/logic/datapacks"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type adapter struct {
	fs afero.Fs
}

// New returns a datapacks.Filesystem backed by fs.
func New(fs afero.Fs) datapacks.Filesystem {
	return &adapter{fs: fs}
}

// NewOS returns a datapacks.Filesystem on the host filesystem.
func NewOS() datapacks.Filesystem {
	return New(afero.NewOsFs())
}

var _ datapacks.Filesystem = (*adapter)(nil)

func (a *adapter) MkdirAll(dir string) error {
	if err := a.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	return nil
}

func (a *adapter) ListFiles(dir string) ([]string, error) {
	entries, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Mode().IsRegular() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

func (a *adapter) Exists(path string) (bool, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	return info.Mode().IsRegular(), nil
}

func (a *adapter) Remove(path string) error {
	if err := a.fs.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	return nil
}

// CopyFile writes to a temporary file next to dst and renames it over dst,
// so an interrupted copy never leaves a truncated pack behind.
func (a *adapter) CopyFile(src, dst string) (err error) {
	in, err := a.fs.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	tmp := dst + ".partial"

	out, err := a.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	defer func() {
		if err != nil {
			_ = a.fs.Remove(tmp)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()

		return fmt.Errorf("copy %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := a.fs.Rename(tmp, dst); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}
