package out

import (
	"context"
	"time"

	"tempo/internal/modules/export/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListCommands(ctx context.Context, manifest domain.Manifest) ([]domain.CommandDescriptor, error)
	Execute(ctx context.Context, manifest domain.Manifest, input domain.ExecuteRequest) (domain.ExecuteResult, error)
}

// SessionRecord is the slice of tracked history handed to report plugins.
type SessionRecord struct {
	ID              string    `json:"id"`
	ActivityID      string    `json:"activity_id"`
	ActivityKind    string    `json:"activity_kind"`
	ActivityTitle   string    `json:"activity_title"`
	State           string    `json:"state"`
	StartTime       time.Time `json:"start_time"`
	DurationSeconds int64     `json:"duration_seconds"`
	PausedSeconds   int64     `json:"paused_seconds"`
}

type SessionHistory interface {
	Sessions(ctx context.Context, from, to time.Time) ([]SessionRecord, error)
}
