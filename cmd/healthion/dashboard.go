package main

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/resource"
	"github.com/garrettladley/healthion/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  "Opens the full-screen terminal dashboard. This is also what runs with no subcommand.",
		Args:  cobra.NoArgs,
		RunE:  withApp(runDashboard),
	}
}

func runDashboard(ctx context.Context, a *app, _ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := a.hookOptions()
	model := tui.New(tui.Deps{
		Ctx:      ctx,
		Logger:   a.logger,
		Auth:     a.auth,
		Identity: a.identity,
		Resources: tui.Resources{
			Timeseries: resource.NewTimeseries(a.client.Timeseries, a.credentials, a.hookOptions(resource.WithQuery(resource.Query{
				Types:      []healthion.SeriesType{healthion.SeriesTypeHeartRate},
				Resolution: healthion.Resolution15Min,
			}))...),
			Sleep:       resource.NewSleepSessions(a.client.Sleep, a.credentials, opts...),
			Activity:    resource.NewActivitySummaries(a.client.Summary, a.credentials, opts...),
			Recovery:    resource.NewRecoverySummaries(a.client.Summary, a.credentials, opts...),
			Workouts:    resource.NewWorkouts(a.client.Workout, a.credentials, opts...),
			Connections: resource.NewConnections(a.client.Connection, a.credentials, opts...),
		},
	})
	defer model.Close()

	p := tea.NewProgram(&model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
