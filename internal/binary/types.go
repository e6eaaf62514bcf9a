package binary

import (
	"fmt"
	"path/filepath"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/platform"
)

// CommandName is the name the target binary is installed and invoked under.
const CommandName = "opennexus"

// assetPrefix starts every release asset file name.
const assetPrefix = CommandName + "-"

// BinaryPath returns where the target binary for version and target lives
// inside the cache:
//
//	<cacheRoot>/opennexus/bin/<version>/<triple>/<binary-name>
//
// It is a pure function of its inputs.
func BinaryPath(cacheRoot, version string, target platform.Target) string {
	return filepath.Join(cacheRoot, CommandName, "bin", version, target.Triple, target.BinaryName)
}

// AssetURL returns the release asset location for target under base:
//
//	<base>/opennexus-<triple>[.exe]
//
// base must not end with a slash.
func AssetURL(base string, target platform.Target) string {
	return fmt.Sprintf("%s/%s%s%s", base, assetPrefix, target.Triple, filepath.Ext(target.BinaryName))
}

// DownloadError reports a release asset request answered with a status other
// than 200 OK.
type DownloadError struct {
	StatusCode int
	URL        string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}
