package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/platform"
)

const (
	// AppName names the cache and config subdirectories.
	AppName = "opennexus"

	// EnvPrefix prefixes the launcher's own environment variables.
	EnvPrefix = "OPENNEXUS"

	// DefaultReleaseBaseURLFormat is filled with the pinned version.
	DefaultReleaseBaseURLFormat = "https://github.com/Alpha-Innovation-Labs/opennexus/releases/download/v%s"
)

// Viper keys. Keys without an explicit variable name bind to EnvPrefix + "_" + upper(key).
const (
	keyReleaseBaseURL = "release_base_url"   // OPENNEXUS_RELEASE_BASE_URL
	keyLogLevel       = "launcher_log_level" // OPENNEXUS_LAUNCHER_LOG_LEVEL
	keyConfigFile     = "launcher_config"    // OPENNEXUS_LAUNCHER_CONFIG
	keyXDGCacheHome   = "xdg_cache_home"
	keyLocalAppData   = "local_app_data"
)

// Settings is the launcher configuration. It is built once by Load at
// program entry and passed by pointer to every component; nothing mutates it
// afterwards.
type Settings struct {
	Version        string         // pinned release, without a leading "v"
	ReleaseBaseURL string         // no trailing slash
	CacheRoot      string         // OS-conventional cache directory
	HomeDir        string         // current user's home directory; empty if unknown
	SelfPath       string         // the running launcher executable; empty if unknown
	ConfigFile     string         // launcher config file consulted, may not exist
	Platform       *platform.Info // detected host
	Logger         Logger
	Stderr         io.Writer // diagnostic stream for user-facing notices
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Version is the build-time version (from -ldflags); may be empty.
	Version string
	// Detector overrides platform detection (default: platform.NewDetector()).
	Detector platform.Detector
	// Stderr receives logs and notices (default: os.Stderr).
	Stderr io.Writer
}

// Test seams for home directory lookup.
var (
	userHomeDir = os.UserHomeDir
	currentUser = user.Current
)

// DefaultReleaseBaseURL returns the release asset location for version.
func DefaultReleaseBaseURL(version string) string {
	return fmt.Sprintf(DefaultReleaseBaseURLFormat, version)
}

// Load resolves the launcher settings from build metadata, the environment
// and the optional launcher config file. For the base URL the environment
// wins over the file, and the file over the default.
func Load(ctx context.Context, opts LoadOptions) (*Settings, error) {
	if opts.Detector == nil {
		opts.Detector = platform.NewDetector()
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	v := newEnvViper()
	logger := NewLogger(opts.Stderr, v.GetString(keyLogLevel))

	settings := &Settings{
		Version: ResolveVersion(opts.Version),
		Logger:  logger,
		Stderr:  opts.Stderr,
	}

	settings.HomeDir = resolveHomeDir(logger)

	info, err := opts.Detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}
	settings.Platform = info

	settings.ConfigFile = v.GetString(keyConfigFile)
	if settings.ConfigFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			settings.ConfigFile = ConfigFilePath(dir)
		} else {
			logger.Debug("no user config directory", "err", err)
		}
	}

	v.SetDefault(keyReleaseBaseURL, DefaultReleaseBaseURL(settings.Version))
	if settings.ConfigFile != "" {
		file, err := LoadFile(ctx, settings.ConfigFile, settings.Version, info)
		if err != nil {
			return nil, fmt.Errorf("load launcher config: %w", err)
		}
		if file.ReleaseBaseURL != "" {
			v.SetDefault(keyReleaseBaseURL, file.ReleaseBaseURL)
		}
	}
	settings.ReleaseBaseURL = strings.TrimRight(v.GetString(keyReleaseBaseURL), "/")
	if err := ValidateReleaseBaseURL(settings.ReleaseBaseURL); err != nil {
		return nil, err
	}
	if IsInsecureURL(settings.ReleaseBaseURL) {
		logger.Warn("release base URL is not using TLS", "url", RedactURL(settings.ReleaseBaseURL))
	}

	cacheRoot, err := CacheRoot(info.OS, CacheEnv{
		XDGCacheHome: v.GetString(keyXDGCacheHome),
		LocalAppData: v.GetString(keyLocalAppData),
	}, settings.HomeDir)
	if err != nil {
		return nil, fmt.Errorf("determine cache root: %w", err)
	}
	settings.CacheRoot = cacheRoot

	if self, err := os.Executable(); err == nil {
		settings.SelfPath = self
	} else {
		logger.Debug("cannot determine launcher path", "err", err)
	}

	logger.Debug("settings loaded",
		"version", settings.Version,
		"base_url", RedactURL(settings.ReleaseBaseURL),
		"cache_root", settings.CacheRoot,
		"os", info.OS,
		"machine", info.Machine,
	)

	return settings, nil
}

// resolveHomeDir returns the user's home directory from the environment,
// then from the user database. An unknown home is not an error here; only the
// components that need it fail.
func resolveHomeDir(logger Logger) string {
	home, err := userHomeDir()
	if err == nil && home != "" {
		return home
	}

	u, uerr := currentUser()
	if uerr == nil && u.HomeDir != "" {
		return u.HomeDir
	}

	logger.Debug("home directory unknown", "env_err", err, "user_err", uerr)
	return ""
}

// newEnvViper returns a private viper instance bound to the environment
// variables the launcher reads.
func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	_ = v.BindEnv(keyReleaseBaseURL)
	_ = v.BindEnv(keyLogLevel)
	_ = v.BindEnv(keyConfigFile)
	_ = v.BindEnv(keyXDGCacheHome, "XDG_CACHE_HOME")
	_ = v.BindEnv(keyLocalAppData, "LOCALAPPDATA")

	v.SetDefault(keyLogLevel, DefaultLogLevel)

	return v
}
