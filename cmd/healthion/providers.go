package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/healthion/internal/client/healthion"
	"github.com/garrettladley/healthion/internal/resource"
)

func providersCmd() *cobra.Command {
	var enabledOnly, cloudOnly bool

	cmd := &cobra.Command{
		Use:     "providers",
		Short:   "List wearable providers",
		GroupID: groupProviders,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			// Unset flags defer to the server's defaults.
			var q resource.Query
			if cmd.Flags().Changed("enabled-only") {
				q.EnabledOnly = &enabledOnly
			}
			if cmd.Flags().Changed("cloud-only") {
				q.CloudOnly = &cloudOnly
			}

			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			hook := resource.NewProviders(a.client.Provider, a.credentials, a.hookOptions()...)
			resp, err := fetched(hook.Refresh(ctx, q))
			if err != nil {
				return err
			}

			return render(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Providers))
				for _, p := range resp.Providers {
					rows = append(rows, []string{p.Name, p.Label(), strconv.FormatBool(p.HasCloudAPI), strconv.FormatBool(p.IsEnabled)})
				}
				return printTable(w, []string{"Provider", "Name", "Cloud API", "Enabled"}, rows)
			})
		}),
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled-only", true, "only providers enabled on the server")
	cmd.Flags().BoolVar(&cloudOnly, "cloud-only", false, "only providers with a cloud API")
	return cmd
}

func connectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "connections",
		Short:   "List connected providers",
		GroupID: groupProviders,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			hook := resource.NewConnections(a.client.Connection, a.credentials, a.hookOptions()...)
			resp, err := fetched(hook.Refresh(ctx, resource.Query{}))
			if err != nil {
				return err
			}

			return render(cmd, resp, func(w io.Writer) error {
				rows := make([][]string, 0, len(resp.Connections))
				for _, c := range resp.Connections {
					rows = append(rows, []string{c.Provider, strconv.FormatBool(c.IsActive), stamp(c.ConnectedAt), stamp(c.LastSync)})
				}
				if err := printTable(w, []string{"Provider", "Active", "Connected", "Last sync"}, rows); err != nil {
					return err
				}
				_, err := fmt.Fprintf(w, "%d active\n", len(hook.Active()))
				return err
			})
		}),
	}
}

func connectCmd() *cobra.Command {
	var redirectURI string

	cmd := &cobra.Command{
		Use:     "connect <provider>",
		Short:   "Start connecting a provider",
		Long:    "Requests an authorization URL for the provider. Open it in a browser to finish connecting.",
		GroupID: groupProviders,
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if redirectURI == "" {
				redirectURI = a.cfg.API.RedirectURI
			}

			connect := resource.NewConnect(a.client.Provider, redirectURI, a.credentials, a.actionOptions()...)
			res, err := connect.Run(ctx, args[0])
			if err != nil {
				return err
			}

			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Open this URL to connect %s:\n%s\n", res.Provider, res.AuthorizationURL)
				return err
			})
		}),
	}

	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "where the provider sends the user afterwards (default HEALTHION_REDIRECT_URI)")
	return cmd
}

func syncCmd() *cobra.Command {
	var dataType string

	cmd := &cobra.Command{
		Use:     "sync <provider>",
		Short:   "Pull the latest data from a connected provider",
		GroupID: groupProviders,
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			req := healthion.SyncRequest{Provider: args[0], DataType: healthion.SyncDataType(dataType)}
			switch req.DataType {
			case healthion.SyncAll, healthion.SyncWorkouts, healthion.Sync247:
			default:
				return fmt.Errorf("invalid data type %q", dataType)
			}

			sync := resource.NewSync(a.client.Connection, a.credentials, a.actionOptions()...)
			res, err := sync.Run(ctx, req)
			if err != nil {
				return err
			}

			return render(cmd, res, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s: %d records synced\n", res.Status, res.SyncedCount)
				if err == nil && res.Message != nil {
					_, err = fmt.Fprintln(w, *res.Message)
				}
				return err
			})
		}),
	}

	cmd.Flags().StringVar(&dataType, "data-type", string(healthion.SyncAll), "all, workouts or 247")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "import <file-key>",
		Short:   "Import an uploaded Apple Health export",
		GroupID: groupProviders,
		Args:    cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			imp := resource.NewImportAppleHealth(a.client.Import, a.credentials, a.actionOptions()...)
			res, err := imp.Run(ctx, args[0])
			if err != nil {
				return err
			}

			return render(cmd, res, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "%s: %d records, %d workouts imported\n", res.Status, res.RecordsImported, res.WorkoutsImported); err != nil {
					return err
				}
				for _, e := range res.Errors {
					if _, err := fmt.Fprintf(w, "  error: %s\n", e); err != nil {
						return err
					}
				}
				return nil
			})
		}),
	}
}
