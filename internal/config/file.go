package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/Alpha-Innovation-Labs/opennexus-launcher/internal/platform"
)

// FileSettings holds the values a launcher config file may set.
// Empty fields were not set by the file.
type FileSettings struct {
	ReleaseBaseURL string
}

// ParseError represents a launcher config file failure with a friendly message.
type ParseError struct {
	Path    string
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Message, e.Detail)
}

// LoadFile evaluates the launcher config file at path.
//
// The file runs in a sandboxed VM that sees two globals: a read-only
// `platform` table describing the host and the pinned `version` string.
// It may assign
//
//	launcher = {
//	    release_base_url = "https://mirror.example.com/opennexus/v" .. version,
//	}
//
// A missing file yields empty settings and no error.
func LoadFile(ctx context.Context, path, version string, info *platform.Info) (*FileSettings, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileSettings{}, nil
		}
		return nil, fmt.Errorf("read launcher config: %w", err)
	}

	return parseFile(ctx, path, string(code), version, info)
}

// parseFile evaluates config source already read from path.
func parseFile(ctx context.Context, path, code, version string, info *platform.Info) (*FileSettings, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if info != nil {
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}
	L.SetGlobal("version", lua.LString(version))

	if err := L.DoString(code); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ParseError{Path: path, Message: "Lua error", Detail: err.Error()}
	}

	return extractFileSettings(L, path)
}

// extractFileSettings reads the `launcher` table left behind by the file.
func extractFileSettings(L *lua.LState, path string) (*FileSettings, error) {
	settings := &FileSettings{}

	value := L.GetGlobal("launcher")
	switch value.Type() {
	case lua.LTNil:
		return settings, nil
	case lua.LTTable:
	default:
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("launcher must be a table, got %s", value.Type())}
	}

	table := value.(*lua.LTable)

	switch url := table.RawGetString("release_base_url"); url.Type() {
	case lua.LTNil:
	case lua.LTString:
		settings.ReleaseBaseURL = url.String()
	default:
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("launcher.release_base_url must be a string, got %s", url.Type())}
	}

	return settings, nil
}
