package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mxgoldstein/log-current/internal/config"
	"github.com/mxgoldstein/log-current/pkg/models"
	"go.uber.org/zap"
)

// Directory holds the open handle of the watched directory for one run
type Directory struct {
	config *config.Config
	logger *zap.Logger
	path   string
	handle *os.File
}

// OpenDirectory opens the configured directory. The caller must Close it.
func OpenDirectory(cfg *config.Config, logger *zap.Logger) (*Directory, error) {
	path := cfg.DirectoryPath()

	handle, err := os.Open(path)
	if err != nil {
		return nil, &DirectoryError{Path: path, Err: err}
	}

	info, err := handle.Stat()
	if err != nil {
		handle.Close()
		return nil, &DirectoryError{Path: path, Err: err}
	}
	if !info.IsDir() {
		handle.Close()
		return nil, &DirectoryError{Path: path, Err: errors.New("not a directory")}
	}

	logger.Debug("Opened directory", zap.String("path", path))

	return &Directory{
		config: cfg,
		logger: logger,
		path:   path,
		handle: handle,
	}, nil
}

// Path returns the directory path, terminated by a separator
func (d *Directory) Path() string {
	return d.path
}

// Snapshot lists the directory from the start and records every eligible
// regular file. Entries keep the order the directory listing yields.
func (d *Directory) Snapshot() (*models.Snapshot, error) {
	if _, err := d.handle.Seek(0, io.SeekStart); err != nil {
		return nil, &DirectoryError{Path: d.path, Err: err}
	}

	entries, err := d.handle.ReadDir(-1)
	if err != nil {
		return nil, &DirectoryError{Path: d.path, Err: err}
	}

	snapshot := models.NewSnapshot(len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !d.config.ShouldWatchFile(name) {
			continue
		}

		size, regular, err := FileSize(d.path + name)
		if err != nil {
			return nil, err
		}
		if !regular {
			d.logger.Debug("Skipping non-regular entry", zap.String("name", name))
			continue
		}

		snapshot.Add(models.FileRecord{Name: name, Size: size})
	}

	d.logger.Debug("Took snapshot",
		zap.String("path", d.path),
		zap.Int("entries", len(entries)),
		zap.Int("files", snapshot.Len()))

	return snapshot, nil
}

// Close releases the directory handle
func (d *Directory) Close() error {
	if d == nil || d.handle == nil {
		return nil
	}
	err := d.handle.Close()
	d.handle = nil
	return err
}

// FileSize opens path for reading and returns the offset of its end.
// Symlinks are followed. regular is false for anything that does not
// resolve to a regular file, including entries that vanished.
func FileSize(path string) (size int64, regular bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, &FileAccessError{Name: filepath.Base(path), Err: err}
	}
	if !info.Mode().IsRegular() {
		return 0, false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, false, &FileAccessError{Name: info.Name(), Err: err}
	}
	defer f.Close()

	size, err = f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, false, &FileAccessError{Name: info.Name(), Err: err}
	}
	return size, true, nil
}
