// Package cloud is the remote file store boundary. The service only ever
// lists folders, creates them, and uploads generated artifacts; which drive
// backs those operations is an injection decision (S3 in production, the
// in-memory drive in development and tests).
package cloud

import (
	"context"
	"time"
)

// Item is one entry of a drive folder listing.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IsFolder      bool      `json:"is_folder"`
	FileExtension string    `json:"file_extension,omitempty"`
	LastModified  time.Time `json:"last_modified"`
	SizeBytes     int64     `json:"size_bytes,omitempty"`
}

// Store is the drive contract. Paths are slash-separated and rooted at the
// drive's base folder.
type Store interface {
	ListChildren(ctx context.Context, path string) ([]Item, error)
	Upload(ctx context.Context, fileName string, content []byte, folderPath string) (string, error)
	CreateFolder(ctx context.Context, name, parentPath string) error
}

// Base folder layout on the drive. Generated flow documents and PDFs are
// filed into per-template-type subfolders of their respective trees.
const (
	BaseFolder      = "AcademicRequests"
	TemplatesFolder = BaseFolder + "/Templates"
	GeneratedFolder = BaseFolder + "/Generated"
	PDFFolder       = BaseFolder + "/PDFs"
)

// typeFolders are the per-template-type subfolders created under both the
// Generated and PDFs trees.
var typeFolders = []string{
	"General", "Events", "Committee", "Endorsements",
	"Travel", "StudentEndorsements", "ExternalCourses", "FieldTrips",
}

// EnsureBaseTree creates the standard folder structure on the drive. Already
// existing folders are not an error; implementations treat creation as
// idempotent.
func EnsureBaseTree(ctx context.Context, s Store) error {
	if err := s.CreateFolder(ctx, BaseFolder, ""); err != nil {
		return err
	}
	for _, sub := range []string{"Templates", "Generated", "PDFs"} {
		if err := s.CreateFolder(ctx, sub, BaseFolder); err != nil {
			return err
		}
	}
	for _, folder := range typeFolders {
		if err := s.CreateFolder(ctx, folder, GeneratedFolder); err != nil {
			return err
		}
		if err := s.CreateFolder(ctx, folder, PDFFolder); err != nil {
			return err
		}
	}
	return nil
}
