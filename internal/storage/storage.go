package storage

import (
	"context"
	"io"
)

// Uploader stores an object and returns a reference the client can open
// (for GCS, the public object URL).
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedURL string, err error)
}

// ResumeObjectName is the bucket key for a candidate's resume upload.
func ResumeObjectName(userID, fileID string) string {
	return "resumes/" + userID + "/" + fileID + ".pdf"
}
