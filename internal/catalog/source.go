package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source produces the raw category groups for one catalog load.
// It reports how many malformed groups it had to skip.
type Source interface {
	Fetch(ctx context.Context) (groups []RawGroup, skipped int, err error)
}

// FileSource reads the catalog document from local disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]RawGroup, int, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return ParseGroups(data)
}

// HTTPSource fetches the catalog document from a URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]RawGroup, int, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("%w: unexpected status %d", ErrLoad, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return ParseGroups(data)
}

// Downloader fetches an object from bucket storage.
// Satisfied by storage.R2Client.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// R2Source fetches the catalog document from an R2/S3 bucket.
type R2Source struct {
	Store Downloader
	Key   string
}

func (s R2Source) Fetch(ctx context.Context) ([]RawGroup, int, error) {
	data, err := s.Store.Download(ctx, s.Key)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return ParseGroups(data)
}
