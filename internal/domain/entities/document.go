package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Upload constraints for dossier documents.

var allowedExtensions = []string{"jpg", "jpeg", "png", "pdf"}

var allowedContentTypes = []string{"image/jpeg", "image/png", "application/pdf"}

// MaxDocumentSize is the inclusive upper bound for a single upload (10 MiB).
const MaxDocumentSize = 10 * 1024 * 1024

// Upload rejection reasons, surfaced so the API can keep a stable code per
// failing check.
const (
	UploadRejectExtension   = "extension"
	UploadRejectContentType = "content_type"
	UploadRejectSize        = "size"
)

// UploadRejectedError is a file that failed the extension, content-type or
// size check. Checks run in that order and the first failure wins.
type UploadRejectedError struct {
	Reason  string
	Message string
}

func (e *UploadRejectedError) Error() string { return e.Message }

// ValidateDocumentFile runs the three upload checks in order: extension,
// declared content type, size. All must pass; the first failure
// short-circuits. It only inspects declared metadata, never file bytes.
func ValidateDocumentFile(fileName, contentType string, size int64) error {
	ext := ""
	if idx := strings.LastIndex(fileName, "."); idx >= 0 && idx < len(fileName)-1 {
		ext = strings.ToLower(fileName[idx+1:])
	}
	if ext == "" || !containsString(allowedExtensions, ext) {
		return &UploadRejectedError{
			Reason:  UploadRejectExtension,
			Message: fmt.Sprintf("file extension not supported, allowed: %s", strings.Join(allowedExtensions, ", ")),
		}
	}

	if !containsString(allowedContentTypes, strings.ToLower(contentType)) {
		return &UploadRejectedError{
			Reason:  UploadRejectContentType,
			Message: fmt.Sprintf("content type not supported, allowed: %s", strings.Join(allowedContentTypes, ", ")),
		}
	}

	if size <= 0 {
		return &UploadRejectedError{
			Reason:  UploadRejectSize,
			Message: "file size must be greater than 0",
		}
	}
	if size > MaxDocumentSize {
		return &UploadRejectedError{
			Reason:  UploadRejectSize,
			Message: fmt.Sprintf("file exceeds the maximum size of %d MiB", MaxDocumentSize/(1024*1024)),
		}
	}

	return nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// DocumentStorageKey builds the blob-store key for a dossier document:
// clients/{owner}/orders/{order}/{concern}/{nanos}_{sanitized-filename}.
// The nanosecond prefix keeps two uploads of the same filename from
// colliding even in back-to-back calls.
func DocumentStorageKey(ownerID, orderID, concern, fileName string) string {
	sanitized := unsafeKeyChars.ReplaceAllString(fileName, "_")
	return fmt.Sprintf("clients/%s/orders/%s/%s/%d_%s", ownerID, orderID, concern, time.Now().UnixNano(), sanitized)
}
