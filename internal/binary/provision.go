package binary

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/config"
	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/platform"
)

// Fetcher downloads a URL into a file.
type Fetcher interface {
	DownloadToFile(ctx context.Context, url, destPath string) error
}

// Provisioner makes sure the pinned binary for the host is in the cache,
// downloading it on first use.
type Provisioner struct {
	settings *config.Settings
	fetcher  Fetcher
	stderr   io.Writer
	logger   config.Logger
}

// NewProvisioner creates a provisioner that downloads through fetcher.
func NewProvisioner(settings *config.Settings, fetcher Fetcher) (*Provisioner, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings are required")
	}

	if settings.Platform == nil {
		return nil, fmt.Errorf("platform info is required")
	}

	if settings.CacheRoot == "" {
		return nil, fmt.Errorf("cache root is required")
	}

	if fetcher == nil {
		fetcher = NewDownloader(settings.Version)
	}

	stderr := settings.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := settings.Logger
	if logger == nil {
		logger = config.NopLogger()
	}

	return &Provisioner{
		settings: settings,
		fetcher:  fetcher,
		stderr:   stderr,
		logger:   logger,
	}, nil
}

// Target resolves the release target for the detected host.
func (p *Provisioner) Target() (platform.Target, error) {
	info := p.settings.Platform
	return platform.Resolve(info.OS, info.Machine)
}

// Ensure returns the cached binary path, downloading the binary first when
// the cache holds no executable copy. An unsupported host fails before
// anything is created.
func (p *Provisioner) Ensure(ctx context.Context) (string, error) {
	target, err := p.Target()
	if err != nil {
		return "", err
	}

	binaryPath := BinaryPath(p.settings.CacheRoot, p.settings.Version, target)

	if err := os.MkdirAll(filepath.Dir(binaryPath), 0755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	if isExecutableFile(binaryPath, p.settings.Platform.OS) {
		p.logger.Debug("using cached binary", "path", binaryPath)
		return binaryPath, nil
	}

	if p.settings.Platform.IsAlpine() {
		p.logger.Warn("published linux binaries are glibc builds and may not run on Alpine",
			"triple", target.Triple)
	}

	url := AssetURL(p.settings.ReleaseBaseURL, target)

	fmt.Fprintf(p.stderr, "`%s` binary not found in PATH. Downloading %s for %s...\n",
		CommandName, p.settings.Version, target.Triple)
	p.logger.Debug("downloading binary", "url", url, "path", binaryPath)

	if err := p.fetcher.DownloadToFile(ctx, url, binaryPath); err != nil {
		return "", fmt.Errorf("download %s: %w", CommandName, err)
	}

	return binaryPath, nil
}
