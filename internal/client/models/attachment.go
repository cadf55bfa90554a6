package models

import (
	"fmt"
	"os"
	"path/filepath"
)

// Attachment is a locally selected binary file waiting to be uploaded. Once
// uploaded it becomes an opaque URL; an uploaded-but-never-submitted
// attachment is an orphan the client does not reclaim.
type Attachment struct {
	Name string
	Data []byte
}

// LoadAttachment reads a local file into an Attachment. The attachment name
// is the file's base name.
func LoadAttachment(path string) (Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Attachment{Name: filepath.Base(path), Data: data}, nil
}
