package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Artifact is one output file of a render run.
type Artifact struct {
	Path    string
	Content []byte
}

// WriteArtifacts writes all artifacts, creating parent directories as
// needed.
func WriteArtifacts(artifacts []Artifact) error {
	for _, a := range artifacts {
		dir := filepath.Dir(a.Path)
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}

		if err := os.WriteFile(a.Path, a.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", a.Path, err)
		}
	}

	return nil
}
