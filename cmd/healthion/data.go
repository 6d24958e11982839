package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/resource"
)

// rangeFlags override a hook's default window.
type rangeFlags struct {
	start string
	end   string
	limit int
}

func (f *rangeFlags) bind(cmd *cobra.Command, bounds string) {
	cmd.Flags().StringVar(&f.start, "start", "", "start of the window ("+bounds+")")
	cmd.Flags().StringVar(&f.end, "end", "", "end of the window ("+bounds+")")
	cmd.Flags().IntVar(&f.limit, "limit", 0, fmt.Sprintf("maximum records (at most %d)", healthion.MaxLimit))
}

func (f *rangeFlags) query() resource.Query {
	return resource.Query{Start: f.start, End: f.end, Limit: f.limit}
}

func timeseriesCmd() *cobra.Command {
	var (
		rng        rangeFlags
		types      []string
		resolution string
	)

	cmd := &cobra.Command{
		Use:     "timeseries",
		Short:   "Show time-series samples (default: last 7 days of heart rate)",
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			q := rng.query()
			for _, t := range types {
				q.Types = append(q.Types, healthion.SeriesType(t))
			}
			if resolution != "" {
				q.Resolution = healthion.Resolution(resolution)
				if !q.Resolution.Valid() {
					return fmt.Errorf("invalid resolution %q", resolution)
				}
			}

			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			hook := resource.NewTimeseries(a.client.Timeseries, a.credentials, a.hookOptions()...)
			resp, err := fetched(hook.Refresh(ctx, q))
			if err != nil {
				return err
			}

			return render(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Data))
				for _, p := range resp.Data {
					rows = append(rows, []string{
						stamp(&p.Timestamp),
						string(p.Type),
						strconv.FormatFloat(p.Value, 'f', -1, 64),
						p.Unit,
					})
				}
				if err := printTable(w, []string{"Time", "Type", "Value", "Unit"}, rows); err != nil {
					return err
				}
				_, err := fmt.Fprintf(w, "%d samples\n", resp.Count)
				return err
			})
		}),
	}

	rng.bind(cmd, "RFC 3339")
	cmd.Flags().StringSliceVar(&types, "type", nil, "series type, repeatable (default heart_rate)")
	cmd.Flags().StringVar(&resolution, "resolution", "", "raw, 1min, 5min, 15min or 1hour")
	return cmd
}

func seriesTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "series-types",
		Short:   "List available series types by category",
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			hook := resource.NewSeriesTypes(a.client.Timeseries, a.credentials, a.hookOptions()...)
			resp, err := fetched(hook.Refresh(ctx, resource.Query{}))
			if err != nil {
				return err
			}

			return render(cmd, resp, func(w io.Writer) error {
				groups := hook.ByCategory()
				categories := make([]string, 0, len(groups))
				for c := range groups {
					categories = append(categories, c)
				}
				slices.Sort(categories)

				var rows [][]string
				for _, c := range categories {
					for _, t := range groups[c] {
						rows = append(rows, []string{c, string(t.Name), str(t.Unit), str(t.Description)})
					}
				}
				return printTable(w, []string{"Category", "Type", "Unit", "Description"}, rows)
			})
		}),
	}
}

func workoutsCmd() *cobra.Command {
	var (
		rng         rangeFlags
		workoutType string
		history     bool
	)

	cmd := &cobra.Command{
		Use:     "workouts",
		Short:   "List workouts (default: last 30 days)",
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}

			if history {
				hook := resource.NewWorkoutHistory(a.client.Workout, a.credentials, a.hookOptions()...)
				resp, err := fetched(hook.Refresh(ctx, rng.query()))
				if err != nil {
					return err
				}
				return render(cmd, resp, func(w io.Writer) error {
					rows := make([][]string, 0, len(resp.Workouts))
					for _, wo := range resp.Workouts {
						rows = append(rows, []string{
							wo.ID.String(),
							str(wo.Type),
							stamp(&wo.StartDatetime),
							seconds(wo.DurationSeconds),
							str(wo.Provider),
						})
					}
					if err := printTable(w, []string{"ID", "Type", "Start", "Duration", "Provider"}, rows); err != nil {
						return err
					}
					_, err := fmt.Fprintf(w, "%d of %d workouts\n", len(resp.Workouts), resp.Total)
					return err
				})
			}

			q := rng.query()
			q.WorkoutType = workoutType
			hook := resource.NewWorkouts(a.client.Workout, a.credentials, a.hookOptions()...)
			resp, err := fetched(hook.Refresh(ctx, q))
			if err != nil {
				return err
			}

			return render(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Data))
				for _, wo := range resp.Data {
					rows = append(rows, []string{
						wo.ID.String(),
						wo.Type,
						stamp(&wo.StartTime),
						seconds(wo.DurationSeconds),
						num(wo.CaloriesKcal),
						num(wo.AvgHeartRateBPM),
						wo.Source.Provider,
					})
				}
				return printTable(w, []string{"ID", "Type", "Start", "Duration", "kcal", "Avg HR", "Provider"}, rows)
			})
		}),
	}

	rng.bind(cmd, "YYYY-MM-DD")
	cmd.Flags().StringVar(&workoutType, "type", "", "only workouts of this type")
	cmd.Flags().BoolVar(&history, "history", false, "list stored workout history instead of the dated event feed")
	return cmd
}

func workoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "workout <provider> <id>",
		Short:   "Show one workout in detail",
		GroupID: groupData,
		Args:    cobra.ExactArgs(2),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			hook := resource.NewWorkoutDetail(a.client.Workout, args[0], args[1], a.credentials, a.hookOptions()...)
			wo, err := fetched(hook.Refresh(ctx, resource.Query{}))
			if err != nil {
				return err
			}

			return render(cmd, wo, func(w io.Writer) error {
				rows := [][]string{
					{"Type", wo.Type},
					{"Name", str(wo.Name)},
					{"Start", stamp(&wo.StartTime)},
					{"End", stamp(&wo.EndTime)},
					{"Duration", seconds(wo.DurationSeconds)},
					{"Calories (kcal)", num(wo.CaloriesKcal)},
					{"Distance (m)", num(wo.DistanceMeters)},
					{"Avg HR (bpm)", num(wo.AvgHeartRateBPM)},
					{"Max HR (bpm)", num(wo.MaxHeartRateBPM)},
					{"Elevation gain (m)", num(wo.ElevationGainMeters)},
					{"Avg speed (m/s)", num(wo.AvgSpeedMPS)},
					{"Avg cadence", num(wo.AvgCadence)},
					{"Avg power (W)", num(wo.AvgPowerWatts)},
					{"Source", wo.Source.Provider},
				}
				return printTable(w, []string{"Field", "Value"}, rows)
			})
		}),
	}
}

func sleepCmd() *cobra.Command {
	var rng rangeFlags

	cmd := &cobra.Command{
		Use:     "sleep",
		Short:   "List sleep sessions (default: last 30 days)",
		GroupID: groupData,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			hook := resource.NewSleepSessions(a.client.Sleep, a.credentials, a.hookOptions()...)
			resp, err := fetched(hook.Refresh(ctx, rng.query()))
			if err != nil {
				return err
			}

			return render(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Data))
				for _, s := range resp.Data {
					kind := "sleep"
					if s.IsNap {
						kind = "nap"
					}
					rows = append(rows, []string{
						stamp(&s.StartTime),
						stamp(&s.EndTime),
						seconds(&s.DurationSeconds),
						num(s.EfficiencyPercent),
						kind,
						s.Source.Provider,
					})
				}
				return printTable(w, []string{"Start", "End", "Duration", "Efficiency %", "Kind", "Provider"}, rows)
			})
		}),
	}

	rng.bind(cmd, "YYYY-MM-DD")
	return cmd
}
