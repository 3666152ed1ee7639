package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AssetDeleter is the metadata service's only view of the asset store.
// Deletion is a two-step saga with no shared transaction: the local
// commit happens first, then one best-effort call here. The caller owns
// the decision to swallow failures.
type AssetDeleter interface {
	DeleteAsset(ctx context.Context, filename, bearerToken string) error
}

type httpAssetClient struct {
	baseURL string
	client  *http.Client
}

func NewAssetClient(baseURL string) AssetDeleter {
	return &httpAssetClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpAssetClient) DeleteAsset(ctx context.Context, filename, bearerToken string) error {
	endpoint := c.baseURL + "/delete/" + url.PathEscape(filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("asset delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("asset delete returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
