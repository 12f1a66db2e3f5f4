package usecase_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tempo/internal/modules/export/domain"
	"tempo/internal/modules/export/dto"
	exportout "tempo/internal/modules/export/port/out"
	"tempo/internal/modules/export/service"
	"tempo/internal/modules/export/usecase"
)

type fakeManifestStore struct{ manifests []domain.Manifest }

func (f *fakeManifestStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, nil
}

type fakeHost struct {
	commands []domain.CommandDescriptor
	executed []domain.ExecuteRequest
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }

func (f *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name}, nil
}

func (f *fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return f.commands, nil
}

func (f *fakeHost) Execute(_ context.Context, _ domain.Manifest, req domain.ExecuteRequest) (domain.ExecuteResult, error) {
	f.executed = append(f.executed, req)
	return domain.ExecuteResult{OutputJSON: `{"ok":true}`}, nil
}

type fakeHistory struct {
	records []exportout.SessionRecord
	calls   int
}

func (f *fakeHistory) Sessions(context.Context, time.Time, time.Time) ([]exportout.SessionRecord, error) {
	f.calls++
	return f.records, nil
}

func newReportFixture(t *testing.T, history *fakeHistory) (interface {
	RunReport(context.Context, dto.ReportInput) (dto.ExecuteOutput, error)
}, *fakeHost) {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "summary")
	payload := []byte("plugin payload")
	if err := os.WriteFile(binary, payload, 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256(payload)
	store := &fakeManifestStore{manifests: []domain.Manifest{{
		Name:         "summary",
		Version:      "1.0.0",
		Binary:       binary,
		SHA256:       hex.EncodeToString(hash[:]),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}}}
	host := &fakeHost{commands: []domain.CommandDescriptor{
		{ID: "weekly", Kind: domain.CommandKindReport},
	}}
	return usecase.NewInteractor(service.NewExportService(store, host), history), host
}

func TestRunReportFeedsSessionHistoryToThePlugin(t *testing.T) {
	t.Parallel()
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	history := &fakeHistory{records: []exportout.SessionRecord{{
		ID:              "sess-1",
		ActivityID:      "act-1",
		ActivityTitle:   "Write report",
		State:           "done",
		StartTime:       from.Add(9 * time.Hour),
		DurationSeconds: 3600,
	}}}
	uc, host := newReportFixture(t, history)

	out, err := uc.RunReport(context.Background(), dto.ReportInput{
		PluginName: "summary",
		CommandID:  "weekly",
		From:       from,
		To:         to,
		DataPath:   "/tmp/data",
		Cwd:        "/tmp",
	})
	if err != nil {
		t.Fatalf("run report: %v", err)
	}
	if out.OutputJSON != `{"ok":true}` {
		t.Fatalf("plugin output must pass through, got %q", out.OutputJSON)
	}
	if len(host.executed) != 1 {
		t.Fatalf("expected one plugin call, got %d", len(host.executed))
	}

	var payload struct {
		From     string                    `json:"from"`
		To       string                    `json:"to"`
		Sessions []exportout.SessionRecord `json:"sessions"`
	}
	if err := json.Unmarshal([]byte(host.executed[0].InputJSON), &payload); err != nil {
		t.Fatalf("plugin input must be valid JSON: %v", err)
	}
	if payload.From != "2026-03-02T00:00:00Z" || payload.To != "2026-03-09T00:00:00Z" {
		t.Fatalf("window not forwarded: %s to %s", payload.From, payload.To)
	}
	if len(payload.Sessions) != 1 || payload.Sessions[0].ID != "sess-1" {
		t.Fatalf("session history not forwarded: %+v", payload.Sessions)
	}
}

func TestRunReportRejectsEmptyWindow(t *testing.T) {
	t.Parallel()
	history := &fakeHistory{}
	uc, _ := newReportFixture(t, history)

	at := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if _, err := uc.RunReport(context.Background(), dto.ReportInput{
		PluginName: "summary",
		CommandID:  "weekly",
		From:       at,
		To:         at,
	}); err == nil {
		t.Fatalf("an empty window must be rejected")
	}
	if history.calls != 0 {
		t.Fatalf("history must not be read for an invalid window")
	}
}
