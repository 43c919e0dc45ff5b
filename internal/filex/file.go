// Package filex holds small filesystem helpers: describing a local file that
// is about to be uploaded and preparing directories for received files.
package filex

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/eieluploader/internal/client/models"
)

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

// EnsureSubdDir creates dirName under the current working directory if it does
// not exist yet and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadUpload stats the file at path and describes it for upload.
//
// The content type is taken from the file extension when known, otherwise it
// is sniffed from the first bytes of the file.
func ReadUpload(path string) (*models.LocalFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	ct, err := DetectContentType(path)
	if err != nil {
		return nil, err
	}

	return &models.LocalFile{
		Path:        path,
		Name:        filepath.Base(path),
		Size:        fi.Size(),
		ContentType: ct,
	}, nil
}

// DetectContentType returns the MIME type for the file at path.
func DetectContentType(path string) (string, error) {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return http.DetectContentType(buf[:n]), nil
}
