package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tempo/internal/modules/export/domain"
	"tempo/internal/modules/export/dto"
	"tempo/internal/modules/export/service"
)

type fakeManifestStore struct {
	manifests []domain.Manifest
	err       error
}

func (f *fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, f.err
}

type fakeHost struct {
	commands     []domain.CommandDescriptor
	result       domain.ExecuteResult
	lifecycleErr error
	executed     []domain.ExecuteRequest
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return f.lifecycleErr
}

func (f *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version, Capabilities: m.Capabilities}, nil
}

func (f *fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return f.commands, nil
}

func (f *fakeHost) Execute(_ context.Context, _ domain.Manifest, req domain.ExecuteRequest) (domain.ExecuteResult, error) {
	f.executed = append(f.executed, req)
	return f.result, nil
}

func writeBinary(t *testing.T, content string) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugin-bin")
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte(content))
	return path, hex.EncodeToString(hash[:])
}

func manifest(name, binary, sum string, caps ...domain.Capability) domain.Manifest {
	return domain.Manifest{
		Name:         name,
		Version:      "1.0.0",
		Binary:       binary,
		SHA256:       sum,
		Enabled:      true,
		Capabilities: caps,
	}
}

func executeInput(plugin, command string) dto.ExecuteInput {
	return dto.ExecuteInput{
		PluginName: plugin,
		CommandID:  command,
		DataPath:   "/tmp/data",
		Cwd:        "/tmp",
	}
}

func TestDoctorDetectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	binary, _ := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, strings.Repeat("a", 64), domain.CapabilityCommand),
	}}
	svc := service.NewExportService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	r := results[0]
	if !r.BinaryReachable || r.ChecksumValid {
		t.Fatalf("expected reachable binary with bad checksum, got %+v", r)
	}
	if r.Error != "checksum mismatch" {
		t.Fatalf("unexpected error: %q", r.Error)
	}
}

func TestDoctorReportsMissingBinary(t *testing.T) {
	t.Parallel()
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", filepath.Join(t.TempDir(), "gone"), strings.Repeat("a", 64), domain.CapabilityCommand),
	}}
	svc := service.NewExportService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if results[0].BinaryReachable || results[0].Error == "" {
		t.Fatalf("expected unreachable binary to be reported, got %+v", results[0])
	}
}

func TestDoctorConfirmsHealthyPlugin(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityCommand),
	}}
	svc := service.NewExportService(store, &fakeHost{})

	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	r := results[0]
	if !r.BinaryReachable || !r.ChecksumValid || !r.LifecycleOK || r.Error != "" {
		t.Fatalf("expected a clean bill of health, got %+v", r)
	}
}

func TestListRejectsDuplicatePluginNames(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityCommand),
		manifest("summary", binary, sum, domain.CapabilityReport),
	}}
	svc := service.NewExportService(store, &fakeHost{})

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("duplicate names must be rejected")
	}
}

func TestExecuteRejectsDisabledPlugin(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	m := manifest("summary", binary, sum, domain.CapabilityCommand)
	m.Enabled = false
	store := &fakeManifestStore{manifests: []domain.Manifest{m}}
	svc := service.NewExportService(store, &fakeHost{})

	if _, err := svc.Execute(context.Background(), executeInput("summary", "echo")); !errors.Is(err, domain.ErrPluginDisabled) {
		t.Fatalf("expected ErrPluginDisabled, got %v", err)
	}
}

func TestExecuteRequiresCommandCapability(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityReport),
	}}
	svc := service.NewExportService(store, &fakeHost{})

	if _, err := svc.Execute(context.Background(), executeInput("summary", "echo")); !errors.Is(err, domain.ErrCapabilityMissing) {
		t.Fatalf("expected ErrCapabilityMissing, got %v", err)
	}
}

func TestExecuteRejectsReportKindCommands(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityCommand, domain.CapabilityReport),
	}}
	host := &fakeHost{commands: []domain.CommandDescriptor{
		{ID: "weekly", Kind: domain.CommandKindReport},
	}}
	svc := service.NewExportService(store, host)

	_, err := svc.Execute(context.Background(), executeInput("summary", "weekly"))
	if err == nil || !strings.Contains(err.Error(), "command kind mismatch") {
		t.Fatalf("expected kind mismatch, got %v", err)
	}
}

func TestExecuteRejectsMalformedInputJSON(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityCommand),
	}}
	svc := service.NewExportService(store, &fakeHost{})

	input := executeInput("summary", "echo")
	input.InputJSON = "{not json"
	if _, err := svc.Execute(context.Background(), input); err == nil {
		t.Fatalf("malformed input JSON must be rejected before the plugin runs")
	}
}

func TestExecuteRunsCommand(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityCommand),
	}}
	host := &fakeHost{
		commands: []domain.CommandDescriptor{{ID: "echo", Kind: domain.CommandKindCommand}},
		result:   domain.ExecuteResult{OutputJSON: `{"ok":true}`, ExitCode: 0},
	}
	svc := service.NewExportService(store, host)

	input := executeInput("summary", "echo")
	input.InputJSON = `{"msg":"hi"}`
	out, err := svc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.OutputJSON != `{"ok":true}` || out.ExitCode != 0 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(host.executed) != 1 || host.executed[0].InputJSON != `{"msg":"hi"}` {
		t.Fatalf("plugin must receive the caller's input, got %+v", host.executed)
	}
	if host.executed[0].Context.DataPath != "/tmp/data" {
		t.Fatalf("execute context must carry the data path")
	}
}

func TestLifecycleTimeoutIsReportedAsPluginTimeout(t *testing.T) {
	t.Parallel()
	binary, sum := writeBinary(t, "plugin payload")
	store := &fakeManifestStore{manifests: []domain.Manifest{
		manifest("summary", binary, sum, domain.CapabilityCommand),
	}}
	host := &fakeHost{lifecycleErr: context.DeadlineExceeded}
	svc := service.NewExportService(store, host)

	if _, err := svc.Execute(context.Background(), executeInput("summary", "echo")); !errors.Is(err, domain.ErrPluginTimeout) {
		t.Fatalf("expected ErrPluginTimeout, got %v", err)
	}
}
