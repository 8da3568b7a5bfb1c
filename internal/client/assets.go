package client

import (
	"context"
	"net/http"

	"github.com/atelierhq/atelier/internal/domain/asset"
)

// AssetClient implements asset.API over the shared transport.
type AssetClient struct {
	c *Client
}

// NewAssetClient creates an asset API client.
func NewAssetClient(c *Client) *AssetClient {
	return &AssetClient{c: c}
}

// List fetches the project's assets, newest first.
func (a *AssetClient) List(ctx context.Context, projectID string) ([]asset.Asset, error) {
	var out []asset.Asset
	if err := a.c.do(ctx, http.MethodGet, "/projects/"+projectID+"/assets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upload registers a new asset. The server assigns the stored path, the
// per-project version number and the default status.
func (a *AssetClient) Upload(ctx context.Context, projectID string, req asset.UploadRequest) (*asset.Asset, error) {
	var out asset.Asset
	if err := a.c.do(ctx, http.MethodPost, "/projects/"+projectID+"/assets", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete destroys the asset and its comments. Owner-only.
func (a *AssetClient) Delete(ctx context.Context, projectID, assetID string) error {
	return a.c.do(ctx, http.MethodDelete, "/projects/"+projectID+"/assets/"+assetID, nil, nil)
}

type statusUpdate struct {
	Status asset.Status `json:"status"`
}

// UpdateStatus transitions the asset's status. Owner-only.
func (a *AssetClient) UpdateStatus(ctx context.Context, projectID, assetID string, status asset.Status) (*asset.Asset, error) {
	var out asset.Asset
	path := "/projects/" + projectID + "/assets/" + assetID + "/status"
	if err := a.c.do(ctx, http.MethodPatch, path, statusUpdate{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
