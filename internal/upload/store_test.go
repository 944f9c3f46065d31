package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a *multipart.FileHeader the way gin would hand it
// to a handler.
func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestStore_SaveAndPath(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	file := multipartFile(t, "resume", "cv.pdf", []byte("resume content"))

	name, err := store.Save(file)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(name))

	path, err := store.Path(name)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("resume content"), data)
}

func TestStore_Path_Missing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Path("1234567890.pdf")
	assert.Error(t, err)
}

func TestStore_Path_Traversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	// A file outside the upload dir must stay unreachable
	outside := filepath.Join(dir, "..", "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

	_, err = store.Path("../secret.txt")
	assert.Error(t, err)
}

func TestGenerateName_KeepsExtension(t *testing.T) {
	name := GenerateName("my resume.docx")
	assert.Equal(t, ".docx", filepath.Ext(name))

	bare := GenerateName("noext")
	assert.Equal(t, "", filepath.Ext(bare))
}
