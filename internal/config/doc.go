// Package config builds the launcher Settings once at program entry.
//
// # Sources
//
// Settings come from three places, highest precedence first:
//   - environment variables, bound through a private viper instance
//   - the optional launcher config file, a Lua script
//   - built-in defaults
//
// The pinned version comes from the build itself: the -ldflags value, then the
// main module version in the Go build info, then FallbackVersion.
//
// # Environment
//
//	OPENNEXUS_RELEASE_BASE_URL     release asset location override
//	OPENNEXUS_LAUNCHER_LOG_LEVEL   debug, info, warn (default) or error
//	OPENNEXUS_LAUNCHER_CONFIG      explicit launcher config file path
//	XDG_CACHE_HOME                 cache root on Linux and macOS
//	LOCALAPPDATA                   cache root on Windows
//
// # Launcher Config File
//
// The file lives at <user config dir>/opennexus/launcher.lua and may set a
// mirror for the release assets:
//
//	launcher = {
//	    release_base_url = platform.when(platform.is_linux, "https://mirror.example.com/v" .. version),
//	}
//
// # Security Model
//
// The file runs in a gopher-lua VM with only the base, table, string and math
// libraries. os, io, package and debug are never opened, and the base
// functions that load code (require, dofile, loadfile, load, loadstring) are
// removed. The injected platform table is read-only. Evaluation honours the
// caller's context, so a runaway script is stopped on cancellation.
//
// The resulting base URL must be an absolute http or https URL; plain http is
// accepted with a warning. Passwords embedded in the URL are redacted from logs
// and errors.
package config
