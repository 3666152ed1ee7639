package domain

// UploadData is the payload returned by the asset store after a
// successful ingest. A success response guarantees the asset and every
// declared derived artifact exist on disk.
type UploadData struct {
	Filename    string   `json:"filename"`
	MediaType   string   `json:"media_type"`
	Filesize    int64    `json:"filesize"`
	Screenshots []string `json:"screenshots,omitempty"`
}

type UploadResponse struct {
	Message string     `json:"message"`
	Data    UploadData `json:"data"`
}
