package models

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/eieluploader/internal/common"
)

// Category classifies the business purpose of an upload.
type Category string

const (
	CategoryWater      Category = "agua"
	CategoryWaste      Category = "residuos"
	CategoryCemeteries Category = "cementerios"
	CategoryWorks      Category = "obra"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategoryWater, CategoryWaste, CategoryCemeteries, CategoryWorks}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// RequiresWorkID reports whether uploads of this category are scoped by a
// work (obra) identifier.
func (c Category) RequiresWorkID() bool {
	return c == CategoryWorks
}

// Form field names expected by the remote endpoint. They are part of the wire
// contract and must not change.
const (
	FieldCategory     = "tipo"
	FieldMunicipality = "mun"
	FieldContent      = "file0"
	FieldFileName     = "filename"
	FieldMimeType     = "mimeType"
	FieldWorkID       = "obra"
)

// UploadRequest describes a single upload attempt. It is treated as read-only
// once constructed.
type UploadRequest struct {
	// Content is the raw file content.
	Content []byte

	// FileName and ContentType are declared to the endpoint as is.
	FileName    string
	ContentType string

	Category Category

	// Municipality is the destination identifier.
	Municipality string

	// WorkID scopes an obra upload. Ignored for other categories.
	WorkID string
}

// Validate checks the metadata part of the request.
func (r UploadRequest) Validate() error {
	if !r.Category.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, r.Category)
	}
	if r.Municipality == "" {
		return common.ErrNoMunicipality
	}
	return nil
}

// Fields builds the flat form field set for the request using the already
// encoded content.
func (r UploadRequest) Fields(encoded string) url.Values {
	v := url.Values{}
	v.Set(FieldCategory, string(r.Category))
	v.Set(FieldMunicipality, r.Municipality)
	v.Set(FieldContent, encoded)
	v.Set(FieldFileName, r.FileName)
	v.Set(FieldMimeType, r.ContentType)

	if r.Category.RequiresWorkID() && r.WorkID != "" {
		v.Set(FieldWorkID, r.WorkID)
	}
	return v
}

// Attempt is a journal record of one finished upload session.
type Attempt struct {
	SessionID    string
	FileName     string
	Size         int64
	Category     Category
	Municipality string
	WorkID       string
	Success      bool
	Reason       string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Duration returns how long the session took to settle.
func (a Attempt) Duration() time.Duration {
	return a.FinishedAt.Sub(a.StartedAt)
}
