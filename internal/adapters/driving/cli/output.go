package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// Output formats.
const (
	outputJSON        = "json"
	outputYAML        = "yaml"
	outputList        = "list"
	outputDescription = "description"
)

var (
	listOutputs   = []string{outputJSON, outputYAML, outputList}
	objectOutputs = []string{outputJSON, outputYAML, outputDescription}
)

func validateOutput(format string, accepted []string) error {
	if format == "" || slices.Contains(accepted, format) {
		return nil
	}
	return fmt.Errorf("%w: unknown output %q (expected one of %s)",
		domain.ErrInvalidInput, format, strings.Join(accepted, ", "))
}

// column renders one field of T in lists and descriptions.
type column[T any] struct {
	header string
	value  func(T) string
}

// view describes how a type is printed. Columns are shown in lists,
// details are appended to them in descriptions.
type view[T any] struct {
	columns []column[T]
	details []column[T]
}

func (v view[T]) headers() []string {
	headers := make([]string, len(v.columns))
	for i, c := range v.columns {
		headers[i] = c.header
	}
	return headers
}

func (v view[T]) rows(items []T) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		row := make([]string, len(v.columns))
		for j, c := range v.columns {
			row[j] = c.value(item)
		}
		rows[i] = row
	}
	return rows
}

func printJSON(w io.Writer, data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func printTable[T any](w io.Writer, v view[T], items []T) {
	if len(items) == 0 {
		return
	}
	s := ui.styles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers(v.headers()...).
		Rows(v.rows(items)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Normal.Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}

func printDescription[T any](w io.Writer, v view[T], item T) {
	fields := append(slices.Clone(v.columns), v.details...)
	width := 0
	for _, f := range fields {
		width = max(width, len(f.header))
	}
	for _, f := range fields {
		label := ui.styles.Key.Render(fmt.Sprintf("%-*s", width, f.header))
		fmt.Fprintf(w, "%s  %s\n", label, f.value(item))
	}
}

// printList prints items in the requested list format.
func printList[T any](w io.Writer, v view[T], items []T, format string) error {
	switch format {
	case outputJSON:
		if items == nil {
			items = []T{}
		}
		return printJSON(w, items)
	case outputYAML:
		if items == nil {
			items = []T{}
		}
		return printYAML(w, items)
	default:
		printTable(w, v, items)
		return nil
	}
}

// printObject prints one item in the requested object format.
func printObject[T any](w io.Writer, v view[T], item T, format string) error {
	switch format {
	case outputJSON:
		return printJSON(w, item)
	case outputYAML:
		return printYAML(w, item)
	default:
		printDescription(w, v, item)
		return nil
	}
}

func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, ui.styles.Success.Render("✔ ")+msg)
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, ui.styles.Warning.Render("✘ "+msg))
}

// printCommand shows the non-interactive equivalent of what the user picked.
func printCommand(w io.Writer, command string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running the following command:")
	fmt.Fprintf(w, "> %s\n", ui.styles.Title.Render(CLIName+" "+command))
	fmt.Fprintln(w, "(consider adding the --no-spinner, --no-color and --script options to use this command in a script)")
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func errOut(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}
