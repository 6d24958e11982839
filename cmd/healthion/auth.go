package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/healthion/internal/oauth"
	"github.com/garrettladley/healthion/internal/resource"
	"github.com/garrettladley/healthion/internal/session"
)

var errStaticToken = errors.New("credential comes from HEALTHION_TOKEN; unset it to manage the stored token")

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "auth [token]",
		Short:   "Store a bearer token",
		Long:    "Stores a bearer token for the Healthion API. Reads the token from stdin when no argument is given.",
		GroupID: groupAccount,
		Args:    cobra.MaximumNArgs(1),
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
			if a.store == nil {
				return errStaticToken
			}

			raw, err := tokenInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			token, err := oauth.TokenFromJWT(raw)
			if err != nil {
				return err
			}
			if err := a.store.Save(ctx, token); err != nil {
				return err
			}
			a.identity.Invalidate()

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Token stored.")
			if sub := oauth.Subject(token.AccessToken); sub != "" {
				fmt.Fprintf(w, "Subject: %s\n", sub)
			}
			if !token.Expiry.IsZero() {
				fmt.Fprintf(w, "Expires: %s\n", token.Expiry.Local().Format(time.DateTime))
			}
			return nil
		}),
	}
}

func tokenInput(r io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Delete the stored token",
		GroupID: groupAccount,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if a.store == nil {
				return errStaticToken
			}
			if err := a.store.Clear(ctx); err != nil {
				return err
			}
			a.identity.Invalidate()
			a.auth.SignOut()

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		}),
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the signed-in identity",
		GroupID: groupAccount,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}

			id := a.identity.Get(ctx)
			if id == nil {
				return fmt.Errorf("could not resolve identity; details in %s", a.logPath)
			}

			return render(cmd, id, func(w io.Writer) error {
				return printIdentity(w, id)
			})
		}),
	}
}

func printIdentity(w io.Writer, id *session.Identity) error {
	permissions := dash
	if len(id.Permissions) > 0 {
		permissions = strings.Join(id.Permissions, ", ")
	}
	_, err := fmt.Fprintf(w, "Email:       %s\nUser ID:     %s\nSubject:     %s\nPermissions: %s\n",
		id.Email, id.UserID, id.SubjectID, permissions)
	return err
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "register",
		Short:   "Register with Open Wearables",
		Long:    "Creates the Open Wearables user that provider connections are attached to. Safe to repeat.",
		GroupID: groupAccount,
		Args:    cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, _ []string) error {
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}

			register := resource.NewRegister(a.client.Connection, a.credentials,
				a.actionOptions(resource.RequireIdentity(a.identity))...)
			res, err := register.Run(ctx, struct{}{})
			if err != nil {
				return err
			}

			return render(cmd, res, func(w io.Writer) error {
				state := "Registered"
				if res.AlreadyRegistered {
					state = "Already registered"
				}
				_, err := fmt.Fprintf(w, "%s as %s\n", state, res.OpenWearablesUserID)
				return err
			})
		}),
	}
}
