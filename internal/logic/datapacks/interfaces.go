package datapacks

// Filesystem is the port for the files a sync reads and writes.
type Filesystem interface {
	MkdirAll(dir string) error

	// ListFiles returns the names of the regular files in dir.
	ListFiles(dir string) ([]string, error)

	Exists(path string) (bool, error)
	Remove(path string) error

	// CopyFile replaces dst with the contents of src.
	CopyFile(src, dst string) error
}
