package request

// UploadURLRequest asks for a presigned PUT location for a file the client
// is about to upload.
type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"required"`
}

// AttachDocumentRequest finalizes an upload performed against a previously
// issued presigned URL.
type AttachDocumentRequest struct {
	DocumentID  string `json:"documentId"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"required"`
	StorageKey  string `json:"storageKey" binding:"required"`
}
