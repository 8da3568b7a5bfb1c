package asset

import "context"

// UploadRequest carries asset upload metadata. File content transfer is
// handled outside the core.
type UploadRequest struct {
	OriginalFilename string `json:"original_filename"`
}

// API is the asset surface of the collaborator service.
type API interface {
	List(ctx context.Context, projectID string) ([]Asset, error)
	Upload(ctx context.Context, projectID string, req UploadRequest) (*Asset, error)
	Delete(ctx context.Context, projectID, assetID string) error
	UpdateStatus(ctx context.Context, projectID, assetID string, status Status) (*Asset, error)
}
