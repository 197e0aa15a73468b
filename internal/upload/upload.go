package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix images are served under.
const PublicPrefix = "/uploads"

// Saver writes uploaded images into Dir under collision-safe names.
type Saver struct {
	Dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Saver{Dir: dir}, nil
}

// Save stores the file as <uuid>-<original-name> and returns its public URL
// path. The stored file is not removed if a later database write fails.
func (s *Saver) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + "-" + filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("save upload %s: %w", file.Filename, err)
	}
	return PublicPrefix + "/" + name, nil
}
