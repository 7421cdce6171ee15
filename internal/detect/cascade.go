package detect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const downloadTimeout = 30 * time.Second

// EnsureCascade returns the cascade parameter bytes from path, fetching
// them from url on first use when the file is absent locally.
func EnsureCascade(ctx context.Context, path, url string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read cascade %s: %w", path, err)
	}

	data, err = downloadCascade(ctx, url)
	if err != nil {
		return nil, err
	}

	// Cache for the next process start. Serving does not depend on this
	// succeeding, so a read-only filesystem only costs a re-download.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		_ = os.WriteFile(path, data, 0o644)
	}

	return data, nil
}

func downloadCascade(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create cascade request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download cascade: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download cascade: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read cascade body: %w", err)
	}

	return data, nil
}
