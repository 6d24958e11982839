package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/healthion/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "healthion",
		Short:   "Wearable health data in your terminal",
		Version: version.Get(),
		RunE:    withApp(runDashboard),
	}
	rootCmd.PersistentFlags().Bool(jsonFlag, false, "print raw JSON instead of tables")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupAccount, Title: "Account"},
		&cobra.Group{ID: groupData, Title: "Health data"},
		&cobra.Group{ID: groupProviders, Title: "Providers"},
	)

	rootCmd.AddCommand(
		authCmd(),
		logoutCmd(),
		whoamiCmd(),
		registerCmd(),
		timeseriesCmd(),
		seriesTypesCmd(),
		workoutsCmd(),
		workoutCmd(),
		sleepCmd(),
		summaryCmd(),
		providersCmd(),
		connectionsCmd(),
		connectCmd(),
		syncCmd(),
		importCmd(),
		dashboardCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

const (
	groupAccount   = "account"
	groupData      = "data"
	groupProviders = "providers"
)
