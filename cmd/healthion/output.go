package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const (
	jsonFlag = "json"
	dash     = "-"
)

// render prints v as indented JSON when --json is set, otherwise calls
// human.
func render(cmd *cobra.Command, v any, human func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool(jsonFlag)
	if !asJSON {
		return human(w)
	}

	b, err := go_json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func str(s *string) string {
	if s == nil || *s == "" {
		return dash
	}
	return *s
}

func num[T int | float64](v *T) string {
	if v == nil {
		return dash
	}
	switch x := any(*v).(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	return dash
}

func stamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return dash
	}
	return t.Local().Format(time.DateTime)
}

func seconds(v *int) string {
	if v == nil {
		return dash
	}
	return (time.Duration(*v) * time.Second).String()
}
