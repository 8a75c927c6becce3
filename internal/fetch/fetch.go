// Package fetch downloads versioned extension archives and extracts
// them into a local file tree for the documentation build to consume.
package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ocdsext/markdownify-go/internal/logging"
)

// Downloader fetches registry data and zip archives over HTTP.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a Downloader with a default HTTP client.
func NewDownloader() *Downloader {
	return &Downloader{
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

// NewDownloaderWithClient creates a Downloader using the given client.
func NewDownloaderWithClient(client *http.Client) *Downloader {
	return &Downloader{client: client}
}

// DownloadZip fetches the archive at url and extracts it under destDir.
// The archive's single top-level directory prefix is stripped; directory
// entries and .travis.yml are skipped. When destDir already exists it is
// left untouched unless overwrite is set.
func (d *Downloader) DownloadZip(ctx context.Context, url, destDir string, overwrite bool) error {
	if _, err := os.Stat(destDir); err == nil {
		if !overwrite {
			logging.Printf("fetch: %s already exists, skipping", destDir)
			return nil
		}
		if err := os.RemoveAll(destDir); err != nil {
			return fmt.Errorf("fetch: remove %s: %w", destDir, err)
		}
	}

	data, err := d.get(ctx, url)
	if err != nil {
		return err
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("fetch: open archive from %s: %w", url, err)
	}
	if len(zr.File) == 0 {
		return fmt.Errorf("fetch: empty archive from %s", url)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("fetch: create %s: %w", destDir, err)
	}

	// The first entry is the archive's top-level directory; its name is
	// the prefix stripped from every other entry.
	prefix := zr.File[0].Name

	for _, f := range zr.File[1:] {
		name := strings.TrimPrefix(f.Name, prefix)
		if name == "" || strings.HasSuffix(name, "/") || name == ".travis.yml" {
			continue
		}
		if err := extractFile(f, destDir, name); err != nil {
			return err
		}
	}

	return nil
}

func (d *Downloader) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request for %s: %w", url, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: get %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: read %s: %w", url, err)
	}
	return data, nil
}

func extractFile(f *zip.File, destDir, name string) error {
	path := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(path, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("fetch: archive entry %q escapes %s", name, destDir)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("fetch: create directory for %s: %w", path, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("fetch: open archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fetch: create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("fetch: write %s: %w", path, err)
	}
	return nil
}
