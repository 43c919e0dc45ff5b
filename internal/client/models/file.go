// Package models defines the client-side data types of the uploader: upload
// requests, their form field contract, local file descriptors and journal
// records.
package models

import (
	"io"
	"os"
)

// LocalFile describes a file on disk that is about to be uploaded.
type LocalFile struct {
	Path        string
	Name        string
	Size        int64
	ContentType string
}

// Open opens the underlying file for reading.
func (f *LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}
