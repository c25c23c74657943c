package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ttrack/internal/bootstrap"
	"ttrack/internal/modules/tracker/domain"
	"ttrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseDir string

	root := &cobra.Command{
		Use:           "ttrack",
		Short:         "Personal time tracking with reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseDir, "dir", config.DefaultBaseDir(), "tracker data directory")

	root.AddCommand(newStartCmd(&baseDir))
	root.AddCommand(newStopCmd(&baseDir))
	root.AddCommand(newStatusCmd(&baseDir))
	root.AddCommand(newReportCmd(&baseDir))
	root.AddCommand(newSummaryCmd(&baseDir))
	root.AddCommand(newReindexCmd(&baseDir))
	root.AddCommand(newDaemonCmd(&baseDir))
	root.AddCommand(newDashboardCmd(&baseDir))
	return root
}

func loadApp(baseDir string) (*bootstrap.App, error) {
	cfg, err := config.New(baseDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newStartCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start [description words...]",
		Short: "Start time tracking",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Start(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Time tracking started at %s\n", out.StartedAt.Format(domain.ClockLayout))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", out.Description)
			if out.DaemonWarning != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", out.DaemonWarning)
			}
			return nil
		},
	}
}

func newStopCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop time tracking and log the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Time tracking stopped at %s\n", out.EndedAt.Format(domain.ClockLayout))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Duration: %s\n", domain.FormatDuration(out.Duration))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Hours: %.2f\n", out.Hours)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged to: %s\n", out.LogPath)
			return nil
		},
	}
}

func newStatusCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current tracking status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if !out.Running {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Time tracking is not currently running.")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Time tracking is ACTIVE")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started: %s\n", out.StartedAt.Format("2006-01-02 15:04:05"))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Duration: %s\n", domain.FormatDuration(out.Elapsed))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", out.Description)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User: %s\n", out.User)
			return nil
		},
	}
}

func newReportCmd(baseDir *string) *cobra.Command {
	var date string
	report := &cobra.Command{
		Use:   "report",
		Short: "Print the daily report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = time.Now().Format(domain.DateLayout)
			}
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Report(context.Background(), date)
			if err != nil {
				return err
			}
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No entries found for %s\n", out.Date)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "=== Daily Report for %s ===\n", out.Date)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total Hours: %.2f\n", out.TotalHours)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total Entries: %d\n\n", len(out.Entries))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 70))
			for _, entry := range out.Entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s - %s (%.2fh): %s\n",
					entry.StartTime, entry.EndTime, entry.DurationHours, entry.Description)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 70))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total: %.2f hours\n", out.TotalHours)
			return nil
		},
	}
	report.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (default: today)")
	return report
}

func newSummaryCmd(baseDir *string) *cobra.Command {
	var month string
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Print per-day totals for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month == "" {
				month = time.Now().Format("2006-01")
			}
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.TrackerCLI.Summary(context.Background(), month)
			if err != nil {
				return err
			}
			if len(out.Rows) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No entries found for %s\n", out.Month)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "=== Monthly Summary for %s ===\n", out.Month)
			for _, row := range out.Rows {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %6.2fh  (%d entries)\n", row.Date, row.Hours, row.Entries)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total: %.2f hours\n", out.TotalHours)
			return nil
		},
	}
	summary.Flags().StringVar(&month, "month", "", "month in YYYY-MM format (default: current)")
	return summary
}

func newReindexCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from the CSV log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			if err := app.TrackerCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newDaemonCmd(baseDir *string) *cobra.Command {
	daemon := &cobra.Command{Use: "daemon", Short: "Manage the reminder daemon"}
	daemon.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run the reminder daemon in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			return app.DaemonCLI.Run(context.Background())
		},
	})
	daemon.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show reminder daemon status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			status, err := app.DaemonCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "running=%t pid=%d\n", status.Running, status.PID)
			return nil
		},
	})
	daemon.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the reminder daemon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			if err := app.DaemonCLI.Stop(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "daemon stopped")
			return nil
		},
	})
	return daemon
}

func newDashboardCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Run the live tracking dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			return bootstrap.RunDashboard(app)
		},
	}
}
