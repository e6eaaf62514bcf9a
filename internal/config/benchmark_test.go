package config

import (
	"context"
	"testing"
)

// BenchmarkParseFile measures evaluating a typical launcher config file.
func BenchmarkParseFile(b *testing.B) {
	luaCode := `
		local mirrors = {
			linux = "https://mirror.example.com/linux",
			darwin = "https://mirror.example.com/macos",
		}
		launcher = {
			release_base_url = (mirrors[platform.os] or "https://github.com") .. "/v" .. version,
		}
	`

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := parseFile(context.Background(), "launcher.lua", luaCode, "0.1.5", linuxInfo); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}

// BenchmarkNewSandboxedVM measures VM setup alone.
func BenchmarkNewSandboxedVM(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		L := newSandboxedVM()
		L.Close()
	}
}

// BenchmarkNormalizeVersion measures semver normalization of a build version.
func BenchmarkNormalizeVersion(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, ok := normalizeVersion("v1.4.2-rc.1"); !ok {
			b.Fatal("version rejected")
		}
	}
}
