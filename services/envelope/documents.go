package envelope

import (
	"fmt"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=documents.go -package envelope -destination document_reader_mock.go DocumentReader
type DocumentReader interface {
	ReadDocument(name string) ([]byte, error)
}

// dirDocumentReader only hands out files that live below its directory.
type dirDocumentReader struct {
	dir string
}

func NewDirDocumentReader(dir string) DocumentReader {
	return dirDocumentReader{dir: dir}
}

func (r dirDocumentReader) ReadDocument(name string) ([]byte, error) {
	root, err := os.OpenRoot(r.dir)
	if err != nil {
		return nil, fmt.Errorf("error opening document directory %s: %w", r.dir, err)
	}
	defer root.Close()

	data, err := root.ReadFile(filepath.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("error reading document %s: %w", name, err)
	}
	return data, nil
}
