package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	exportrpc "tempo/internal/modules/export/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *exportrpc.Empty) (*exportrpc.Metadata, error) {
	return &exportrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"command", "report"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *exportrpc.Empty) (*exportrpc.ListCommandsResponse, error) {
	return &exportrpc.ListCommandsResponse{Commands: []exportrpc.CommandDescriptor{
		{ID: "echo", Title: "Echo", Description: "Echoes provided input", Kind: "command", TimeoutMS: 2000},
		{ID: "weekly-summary", Title: "Weekly Summary", Description: "Totals tracked time per activity", Kind: "report", TimeoutMS: 2500},
	}}, nil
}

type reportInput struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Sessions []struct {
		ActivityID      string    `json:"activity_id"`
		ActivityTitle   string    `json:"activity_title"`
		State           string    `json:"state"`
		StartTime       time.Time `json:"start_time"`
		DurationSeconds int64     `json:"duration_seconds"`
	} `json:"sessions"`
}

func (s *server) Execute(_ context.Context, in *exportrpc.ExecuteRequest) (*exportrpc.ExecuteResponse, error) {
	switch in.CommandID {
	case "echo":
		if strings.TrimSpace(in.InputJSON) == "" {
			return &exportrpc.ExecuteResponse{Stdout: "echo", OutputJSON: `{"echo":""}`, ExitCode: 0}, nil
		}
		return &exportrpc.ExecuteResponse{Stdout: in.InputJSON, OutputJSON: fmt.Sprintf(`{"echo":%q}`, in.InputJSON), ExitCode: 0}, nil
	case "weekly-summary":
		input := reportInput{}
		if strings.TrimSpace(in.InputJSON) != "" {
			if err := json.Unmarshal([]byte(in.InputJSON), &input); err != nil {
				return nil, fmt.Errorf("decode report input: %w", err)
			}
		}
		totals := map[string]int64{}
		for _, session := range input.Sessions {
			if session.State != "done" {
				continue
			}
			totals[session.ActivityTitle] += session.DurationSeconds
		}
		summary := map[string]any{
			"from":             input.From,
			"to":               input.To,
			"sessions":         len(input.Sessions),
			"seconds_by_title": totals,
		}
		raw, _ := json.Marshal(summary)
		return &exportrpc.ExecuteResponse{Stdout: "report ready", OutputJSON: string(raw), ExitCode: 0}, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: exportrpc.HandshakeConfig,
		Plugins:         exportrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
