package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/resource"
)

func summaryCmd() *cobra.Command {
	var rng rangeFlags

	cmd := &cobra.Command{
		Use:       "summary <activity|sleep|recovery|body>",
		Short:     "Show daily summaries (default: last 30 days)",
		GroupID:   groupData,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(healthion.SummaryActivity), string(healthion.SummarySleep), string(healthion.SummaryRecovery), string(healthion.SummaryBody)},
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}

			q := rng.query()
			svc := a.client.Summary
			opts := a.hookOptions()

			switch healthion.SummaryKind(args[0]) {
			case healthion.SummaryActivity:
				return printSummaries(ctx, cmd, resource.NewActivitySummaries(svc, a.credentials, opts...), q,
					[]string{"Date", "Steps", "Distance (m)", "Active kcal", "Total kcal", "Provider"},
					func(s healthion.ActivitySummary) []string {
						return []string{s.Date, num(s.Steps), num(s.DistanceMeters), num(s.ActiveCaloriesKcal), num(s.TotalCaloriesKcal), s.Source.Provider}
					})
			case healthion.SummarySleep:
				return printSummaries(ctx, cmd, resource.NewSleepSummaries(svc, a.credentials, opts...), q,
					[]string{"Date", "Duration", "Efficiency %", "Avg HR", "HRV (ms)", "Provider"},
					func(s healthion.SleepSummary) []string {
						return []string{s.Date, seconds(s.DurationSeconds), num(s.EfficiencyPercent), num(s.AvgHeartRateBPM), num(s.AvgHRVRmssdMs), s.Source.Provider}
					})
			case healthion.SummaryRecovery:
				return printSummaries(ctx, cmd, resource.NewRecoverySummaries(svc, a.credentials, opts...), q,
					[]string{"Date", "Score", "Resting HR", "HRV (ms)", "SpO2 %", "Provider"},
					func(s healthion.RecoverySummary) []string {
						return []string{s.Date, num(s.RecoveryScore), num(s.RestingHeartRateBPM), num(s.AvgHRVRmssdMs), num(s.AvgSpO2Percent), s.Source.Provider}
					})
			case healthion.SummaryBody:
				return printSummaries(ctx, cmd, resource.NewBodySummaries(svc, a.credentials, opts...), q,
					[]string{"Date", "Weight (kg)", "Body fat %", "BMI", "Resting HR", "Provider"},
					func(s healthion.BodySummary) []string {
						return []string{s.Date, num(s.WeightKg), num(s.BodyFatPercent), num(s.BMI), num(s.RestingHeartRateBPM), s.Source.Provider}
					})
			}
			return fmt.Errorf("unknown summary %q", args[0])
		}),
	}

	rng.bind(cmd, "YYYY-MM-DD")
	return cmd
}

func printSummaries[T any](ctx context.Context, cmd *cobra.Command, page *resource.Page[T], q resource.Query, headers []string, row func(T) []string) error {
	resp, err := fetched(page.Refresh(ctx, q))
	if err != nil {
		return err
	}

	return render(cmd, resp, func(w io.Writer) error {
		rows := make([][]string, 0, len(resp.Data))
		for _, item := range resp.Data {
			rows = append(rows, row(item))
		}
		if err := printTable(w, headers, rows); err != nil {
			return err
		}
		if resp.HasMore {
			_, err := fmt.Fprintf(w, "more results available (cursor %s); narrow the window or raise --limit\n", resp.Cursor())
			return err
		}
		return nil
	})
}
