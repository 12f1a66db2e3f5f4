package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	out "tempo/internal/modules/export/adapter/out"
)

func writeManifests(t *testing.T, base, payload string) {
	t.Helper()
	dir := filepath.Join(base, "plugins")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plugins.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifests: %v", err)
	}
}

func TestLoadMissingFileMeansNoPlugins(t *testing.T) {
	t.Parallel()
	store := out.NewFileManifestStore(t.TempDir())

	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected no plugins, got %d", len(manifests))
	}
}

func TestLoadResolvesRelativeBinaryPaths(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifests(t, base, `[
  {"name":"summary","version":"1.0.0","binary":"plugins/bin/summary","sha256":"`+sixtyFourHex+`","enabled":true,"capabilities":["report"]}
]`)
	store := out.NewFileManifestStore(base)

	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := filepath.Join(base, "plugins", "bin", "summary")
	if manifests[0].Binary != want {
		t.Fatalf("relative binary must resolve against the data dir: got %q want %q", manifests[0].Binary, want)
	}
}

func TestLoadKeepsAbsoluteBinaryPaths(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifests(t, base, `[
  {"name":"summary","version":"1.0.0","binary":"/opt/tempo/summary","sha256":"`+sixtyFourHex+`","enabled":true,"capabilities":["report"]}
]`)
	store := out.NewFileManifestStore(base)

	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if manifests[0].Binary != "/opt/tempo/summary" {
		t.Fatalf("absolute binary must pass through, got %q", manifests[0].Binary)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	writeManifests(t, base, `[
  {"name":"summary","version":"1.0.0","binary":"x","sha256":"`+sixtyFourHex+`","enabled":true,"capabilities":["report"],"surprise":1}
]`)
	store := out.NewFileManifestStore(base)

	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("unknown manifest fields must be rejected")
	}
}

const sixtyFourHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
