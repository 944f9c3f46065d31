package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes uploaded resumes and profile pictures into a single shared
// directory under server-generated names. Names embed a nanosecond
// timestamp, so concurrent uploads never contend for a path.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save streams the uploaded file to disk and returns the generated
// filename under which it can later be served.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := GenerateName(file.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return name, nil
}

// Path resolves a stored filename to its on-disk path. The filename is
// flattened to its base so a crafted name cannot escape the upload dir.
// Returns os.ErrNotExist-wrapping error when the file is absent.
func (s *Store) Path(filename string) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", name, err)
	}

	return path, nil
}

// GenerateName builds a unique stored name from the original upload name,
// keeping only its extension.
func GenerateName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
}
