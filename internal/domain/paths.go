package domain

import "path/filepath"

type DataFile string

const (
	DatabaseFile DataFile = "videoplayer.db"
)

// Paths holds the file paths derived from the data directory
type Paths struct {
	DataDir      string
	DatabasePath string
}

// NewPaths creates a new Paths instance with all paths initialized
func NewPaths(dataDir string) *Paths {
	if dataDir == "" {
		dataDir = "."
	}
	return &Paths{
		DataDir:      dataDir,
		DatabasePath: makeDataPath(dataDir, DatabaseFile),
	}
}

func makeDataPath(dataDir string, f DataFile) string {
	return filepath.Join(dataDir, string(f))
}
