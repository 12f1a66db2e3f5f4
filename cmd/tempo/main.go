package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/bootstrap"
	exportdto "tempo/internal/modules/export/dto"
	scheduledto "tempo/internal/modules/schedule/dto"
	"tempo/internal/platform/config"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Personal time organizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory path")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newActivityCmd(&dataPath))
	root.AddCommand(newConflictsCmd(&dataPath))
	root.AddCommand(newTimerCmd(&dataPath))
	root.AddCommand(newLogCmd(&dataPath))
	root.AddCommand(newSessionsCmd(&dataPath))
	root.AddCommand(newExportCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return app, cfg, nil
}

func parseClock(day, value string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, value, time.Local); err == nil {
		return t, nil
	}
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	return time.ParseInLocation("2006-01-02 15:04", day+" "+value, time.Local)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run tempo terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(cfg, app, time.Now().Format("2006-01-02"))
		},
	}
}

func newActivityCmd(dataPath *string) *cobra.Command {
	activity := &cobra.Command{Use: "activity", Short: "Manage habits and tasks"}

	var kind, day, startRaw, endRaw string
	var tags []string

	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit or task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			var start, end *time.Time
			if startRaw != "" {
				t, err := parseClock(day, startRaw)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				start = &t
			}
			if endRaw != "" {
				t, err := parseClock(day, endRaw)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				end = &t
			}
			out, err := app.CatalogCLI.Add(context.Background(), kind, args[0], day, start, end, tags)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) day=%s\n", out.Title, out.ID, out.Day)
			return nil
		},
	}
	add.Flags().StringVar(&kind, "kind", "task", "activity kind: habit|task")
	add.Flags().StringVar(&day, "day", "", "day yyyy-mm-dd (defaults to start's day or today)")
	add.Flags().StringVar(&startRaw, "start", "", "start time hh:mm")
	add.Flags().StringVar(&endRaw, "end", "", "end time hh:mm")
	add.Flags().StringSliceVar(&tags, "tags", nil, "tags")

	var listDay string
	list := &cobra.Command{
		Use:   "list",
		Short: "List activities for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if listDay == "" {
				listDay = time.Now().Format("2006-01-02")
			}
			activities, err := app.CatalogCLI.ListDay(context.Background(), listDay)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no activities")
				return nil
			}
			for _, a := range activities {
				window := "--:-- --:--"
				if a.Start != nil {
					endPart := "--:--"
					if a.End != nil {
						endPart = a.End.Format("15:04")
					}
					window = a.Start.Format("15:04") + " " + endPart
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Kind, window, a.Status, a.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listDay, "day", "", "day yyyy-mm-dd (defaults to today)")

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show activity details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			a, err := app.CatalogCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ntitle: %s\nkind: %s\nday: %s\nstatus: %s\n", a.ID, a.Title, a.Kind, a.Day, a.Status)
			if a.Start != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "start: %s\n", a.Start.Format(timeLayout))
			}
			if a.End != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "end: %s\n", a.End.Format(timeLayout))
			}
			if a.DoneSubstatus != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "done: %s (%d%%)\n", a.DoneSubstatus, a.CompletionPct)
			}
			if len(a.Tags) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tags: %s\n", strings.Join(a.Tags, ", "))
			}
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "activity id")

	var setID, setDay, setStart, setEnd string
	setTime := &cobra.Command{
		Use:   "set-time --id <id> --start <hh:mm>",
		Short: "Move an activity, reporting any new conflicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(setID) == "" {
				return fmt.Errorf("--id is required")
			}
			if strings.TrimSpace(setStart) == "" {
				return fmt.Errorf("--start is required")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			a, err := app.CatalogCLI.Get(context.Background(), setID)
			if err != nil {
				return err
			}
			if setDay == "" {
				setDay = a.Day
			}
			start, err := parseClock(setDay, setStart)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			var end *time.Time
			if setEnd != "" {
				t, err := parseClock(setDay, setEnd)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				end = &t
			}
			out, err := app.ScheduleCLI.Reschedule(context.Background(), setID, a.Kind, start, end)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "moved %s to %s\n", out.ActivityID, out.Start.Format(timeLayout))
			if len(out.Conflicts) == 0 {
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d conflict(s):\n", len(out.Conflicts))
			for _, c := range out.Conflicts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s %s-%s overlaps %s %s-%s\n",
					c.AnchorID, c.AnchorStart.Format("15:04"), c.AnchorEnd.Format("15:04"),
					c.OtherID, c.OtherStart.Format("15:04"), c.OtherEnd.Format("15:04"))
			}
			if out.Proposal != nil {
				printProposal(cmd, *out.Proposal)
			}
			return nil
		},
	}
	setTime.Flags().StringVar(&setID, "id", "", "activity id")
	setTime.Flags().StringVar(&setDay, "day", "", "day yyyy-mm-dd (defaults to the activity's day)")
	setTime.Flags().StringVar(&setStart, "start", "", "start time hh:mm")
	setTime.Flags().StringVar(&setEnd, "end", "", "end time hh:mm")

	activity.AddCommand(add, list, show, setTime)
	return activity
}

func newConflictsCmd(dataPath *string) *cobra.Command {
	conflicts := &cobra.Command{Use: "conflicts", Short: "Detect overlaps and propose reorderings"}

	var checkID, checkKind string
	check := &cobra.Command{
		Use:   "check --id <id>",
		Short: "Check one activity against its day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(checkID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			found, err := app.ScheduleCLI.DetectConflicts(context.Background(), checkID, checkKind)
			if err != nil {
				return err
			}
			printConflicts(cmd, found)
			return nil
		},
	}
	check.Flags().StringVar(&checkID, "id", "", "activity id")
	check.Flags().StringVar(&checkKind, "kind", "", "activity kind (optional)")

	var dayRaw string
	day := &cobra.Command{
		Use:   "day",
		Short: "List all conflicts for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if dayRaw == "" {
				dayRaw = time.Now().Format("2006-01-02")
			}
			found, err := app.ScheduleCLI.ConflictsForDay(context.Background(), dayRaw)
			if err != nil {
				return err
			}
			printConflicts(cmd, found)
			return nil
		},
	}
	day.Flags().StringVar(&dayRaw, "day", "", "day yyyy-mm-dd (defaults to today)")

	var proposeDay string
	var apply bool
	propose := &cobra.Command{
		Use:   "propose",
		Short: "Propose a reordering that clears a day's conflicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if proposeDay == "" {
				proposeDay = time.Now().Format("2006-01-02")
			}
			proposal, err := app.ScheduleCLI.ProposeForDay(context.Background(), proposeDay)
			if err != nil {
				return err
			}
			if len(proposal.Changes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to move")
				return nil
			}
			printProposal(cmd, proposal)
			if !apply {
				return nil
			}
			out, err := app.ScheduleCLI.ApplyProposal(context.Background(), proposal.Changes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "applied %d change(s)\n", out.Applied)
			return nil
		},
	}
	propose.Flags().StringVar(&proposeDay, "day", "", "day yyyy-mm-dd (defaults to today)")
	propose.Flags().BoolVar(&apply, "apply", false, "apply the proposed changes")

	conflicts.AddCommand(check, day, propose)
	return conflicts
}

func newTimerCmd(dataPath *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Track time against an activity"}

	var startID, startKind string
	start := &cobra.Command{
		Use:   "start --id <id>",
		Short: "Start a timer session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(startID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Start(context.Background(), startID, startKind)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer started: %s activity=%s at=%s\n", out.SessionID, out.ActivityID, out.StartedAt.Format(timeLayout))
			return nil
		},
	}
	start.Flags().StringVar(&startID, "id", "", "activity id")
	start.Flags().StringVar(&startKind, "kind", "", "activity kind (optional)")

	var sessionID string
	pause := &cobra.Command{
		Use:   "pause",
		Short: "Pause the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Pause(context.Background(), sessionID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "paused %s elapsed=%ds\n", out.SessionID, out.ElapsedSeconds)
			return nil
		},
	}
	resume := &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Resume(context.Background(), sessionID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "resumed %s elapsed=%ds\n", out.SessionID, out.ElapsedSeconds)
			return nil
		},
	}

	var notes string
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the active session and mark the activity done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Stop(context.Background(), sessionID, notes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stopped %s tracked=%ds paused=%ds completion=%d%% (%s)\n",
				out.SessionID, out.DurationSeconds, out.PausedSeconds, out.CompletionPct, out.Substatus)
			if out.JournalPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journal: %s\n", out.JournalPath)
			}
			return nil
		},
	}
	stop.Flags().StringVar(&notes, "notes", "", "session notes")

	var reason string
	cancel := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the active session without completing the activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Cancel(context.Background(), sessionID, reason)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cancelled %s activity=%s\n", out.SessionID, out.ActivityID)
			return nil
		},
	}
	cancel.Flags().StringVar(&reason, "reason", "", "cancellation reason")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.GetActive(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session: %s\nactivity: %s (%s)\nstate: %s\nstarted: %s\nelapsed: %ds\npaused: %ds\n",
				out.SessionID, out.ActivityTitle, out.ActivityID, out.State, out.StartedAt.Format(timeLayout), out.ElapsedSeconds, out.PausedSeconds)
			return nil
		},
	}

	for _, c := range []*cobra.Command{pause, resume, stop, cancel} {
		c.Flags().StringVar(&sessionID, "session-id", "", "session id (defaults to the active session)")
	}

	timer.AddCommand(start, pause, resume, stop, cancel, status)
	return timer
}

func newLogCmd(dataPath *string) *cobra.Command {
	var activityID, kind, day, startRaw, endRaw, notes string
	var minutes int

	log := &cobra.Command{
		Use:   "log --id <id>",
		Short: "Log effort retroactively",
		Long:  "Log effort for an activity after the fact. Provide either --start and --end, or --minutes, but not both.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(activityID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			var start, end *time.Time
			if startRaw != "" {
				t, err := parseClock(day, startRaw)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				start = &t
			}
			if endRaw != "" {
				t, err := parseClock(day, endRaw)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				end = &t
			}
			out, err := app.TrackerCLI.LogManual(context.Background(), activityID, kind, start, end, minutes, notes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %ds completion=%d%% (%s)\n", out.DurationSeconds, out.CompletionPct, out.Substatus)
			if out.JournalPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journal: %s\n", out.JournalPath)
			}
			return nil
		},
	}
	log.Flags().StringVar(&activityID, "id", "", "activity id")
	log.Flags().StringVar(&kind, "kind", "", "activity kind (optional)")
	log.Flags().StringVar(&day, "day", "", "day yyyy-mm-dd for --start/--end (defaults to today)")
	log.Flags().StringVar(&startRaw, "start", "", "interval start hh:mm")
	log.Flags().StringVar(&endRaw, "end", "", "interval end hh:mm")
	log.Flags().IntVar(&minutes, "minutes", 0, "duration in minutes, ending now")
	log.Flags().StringVar(&notes, "notes", "", "session notes")
	return log
}

func newSessionsCmd(dataPath *string) *cobra.Command {
	sessions := &cobra.Command{Use: "sessions", Short: "Query tracked sessions"}

	var fromRaw, toRaw string
	list := &cobra.Command{
		Use:   "list",
		Short: "List sessions in a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			from, to, err := parseWindow(fromRaw, toRaw)
			if err != nil {
				return err
			}
			found, err := app.TrackerCLI.ListSessions(context.Background(), from, to)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%ds\t%s\n",
					s.SessionID, s.StartedAt.Format(timeLayout), s.State, s.DurationSeconds, s.ActivityTitle)
			}
			return nil
		},
	}
	list.Flags().StringVar(&fromRaw, "from", "", "window start yyyy-mm-dd (defaults to 7 days ago)")
	list.Flags().StringVar(&toRaw, "to", "", "window end yyyy-mm-dd, exclusive (defaults to tomorrow)")

	sessions.AddCommand(list)
	return sessions
}

func parseWindow(fromRaw, toRaw string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 0, 1)
	if fromRaw != "" {
		t, err := time.ParseInLocation("2006-01-02", fromRaw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from: %w", err)
		}
		from = t
	}
	if toRaw != "" {
		t, err := time.ParseInLocation("2006-01-02", toRaw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to: %w", err)
		}
		to = t
	}
	return from, to, nil
}

func newExportCmd(dataPath *string) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export plugin host"}

	export.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			plugins, err := app.ExportCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tenabled=%t\t%s\n", p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","))
			}
			return nil
		},
	})

	export.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check plugin binaries, checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			results, err := app.ExportCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			for _, r := range results {
				status := "ok"
				if r.Error != "" {
					status = r.Error
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbinary=%t\tchecksum=%t\tlifecycle=%t\t%s\n",
					r.Name, r.BinaryReachable, r.ChecksumValid, r.LifecycleOK, status)
			}
			return nil
		},
	})

	commands := &cobra.Command{
		Use:   "commands <plugin>",
		Short: "List a plugin's commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			found, err := app.ExportCLI.ListCommands(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, c := range found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\n", c.ID, c.Kind, c.Description)
			}
			return nil
		},
	}
	export.AddCommand(commands)

	var inputJSON, execActivityID, execSessionID string
	run := &cobra.Command{
		Use:   "run <plugin> <command>",
		Short: "Execute a plugin command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cfg, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.Execute(context.Background(), exportdto.ExecuteInput{
				PluginName: args[0],
				CommandID:  args[1],
				InputJSON:  inputJSON,
				ActivityID: execActivityID,
				SessionID:  execSessionID,
				DataPath:   cfg.DataPath,
				Cwd:        cwd,
			})
			if err != nil {
				return err
			}
			printExecuteOutput(cmd, out)
			return nil
		},
	}
	run.Flags().StringVar(&inputJSON, "input-json", "", "JSON payload for the command")
	run.Flags().StringVar(&execActivityID, "activity-id", "", "activity context")
	run.Flags().StringVar(&execSessionID, "session-id", "", "session context")
	export.AddCommand(run)

	var fromRaw, toRaw string
	report := &cobra.Command{
		Use:   "report <plugin> <command>",
		Short: "Run a report command over tracked session history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cfg, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			from, to, err := parseWindow(fromRaw, toRaw)
			if err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.RunReport(context.Background(), exportdto.ReportInput{
				PluginName: args[0],
				CommandID:  args[1],
				From:       from,
				To:         to,
				DataPath:   cfg.DataPath,
				Cwd:        cwd,
			})
			if err != nil {
				return err
			}
			printExecuteOutput(cmd, out)
			return nil
		},
	}
	report.Flags().StringVar(&fromRaw, "from", "", "window start yyyy-mm-dd (defaults to 7 days ago)")
	report.Flags().StringVar(&toRaw, "to", "", "window end yyyy-mm-dd, exclusive (defaults to tomorrow)")
	export.AddCommand(report)

	return export
}

func printConflicts(cmd *cobra.Command, found []scheduledto.ConflictOutput) {
	if len(found) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no conflicts")
		return
	}
	for _, c := range found {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s-%s overlaps %s %s-%s\n",
			c.AnchorID, c.AnchorStart.Format("15:04"), c.AnchorEnd.Format("15:04"),
			c.OtherID, c.OtherStart.Format("15:04"), c.OtherEnd.Format("15:04"))
	}
}

func printProposal(cmd *cobra.Command, proposal scheduledto.ProposalOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "proposal (%d move(s), ~%ds total shift):\n",
		len(proposal.Changes), proposal.EstimatedShiftSeconds)
	for _, change := range proposal.Changes {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s-%s\n",
			change.ActivityID, change.Start.Format("15:04"), change.End.Format("15:04"))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "window: %s-%s\n",
		proposal.WindowStart.Format("15:04"), proposal.WindowEnd.Format("15:04"))
}

func printExecuteOutput(cmd *cobra.Command, out exportdto.ExecuteOutput) {
	if out.Stdout != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Stdout)
	}
	if out.Stderr != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Stderr)
	}
	if out.OutputJSON != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
	}
	if out.ExitCode != 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exit code: %d\n", out.ExitCode)
	}
}
