package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// MaxRedirects is the number of redirects followed before giving up.
	// GitHub release assets redirect once to their storage host.
	MaxRedirects = 10

	// userAgentPrefix is combined with the launcher version
	userAgentPrefix = "opennexus-launcher/"
)

// executableMode is applied to downloaded binaries on non-Windows hosts.
const executableMode os.FileMode = 0o755

// Downloader fetches a release asset into a file. It makes a single attempt
// with no client timeout; cancellation comes from the caller's context.
type Downloader struct {
	client    *http.Client
	userAgent string
	goos      string
}

// NewDownloader creates a downloader identifying itself as the given
// launcher version.
func NewDownloader(version string) *Downloader {
	return &Downloader{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: userAgentPrefix + version,
		goos:      runtime.GOOS,
	}
}

// DownloadToFile downloads url to destPath.
//
// The body is streamed into a temporary file next to destPath, marked
// executable (except on Windows) and renamed into place, so destPath either
// does not exist or holds the complete asset. A status other than 200 fails
// with *DownloadError before anything is written.
func (d *Downloader) DownloadToFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &DownloadError{StatusCode: resp.StatusCode, URL: url}
	}

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(destDir, "."+filepath.Base(destPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Track whether we need to clean up the temp file
	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}

	// Close temp file before chmod and rename
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if d.goos != "windows" {
		if err := os.Chmod(tmpPath, executableMode); err != nil {
			return fmt.Errorf("set executable: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanupNeeded = false
	return nil
}
