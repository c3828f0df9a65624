package filesystem

import "fmt"

// DirectoryError means the watched directory could not be opened or listed
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("%s can't be opened for reading: %v\nCheck if the directory exists or try running log-current as super user", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// FileAccessError means a directory entry could not be opened to measure its size.
// A snapshot missing such a file would hide it, so the run is aborted.
type FileAccessError struct {
	Name string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to open %s for reading: %v\nTry running log-current as super user", e.Name, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }
