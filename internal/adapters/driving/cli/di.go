package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/picker"
	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/spinner"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

var diCmd = &cobra.Command{
	Use:   "di",
	Short: "Data Integration commands",
	Long: `Manage Data Integration resources of the selected cloud project.

The project is the service name stored with "config set-service-name",
or the one given with --service-name.`,
}

func init() {
	rootCmd.AddCommand(diCmd)
}

func requireDI() (string, error) {
	if diService == nil {
		return "", errors.New("data integration service not configured")
	}
	return diService.ServiceName()
}

// listFlags are shared by every list command.
type listFlags struct {
	filter string
	sort   string
	desc   bool
	output string
	script bool
}

func (f *listFlags) register(cmd *cobra.Command, sortKeys []string, defaultSort string) {
	cmd.Flags().StringVar(&f.filter, "filter", "", "JSONPath filter applied to the list (e.g. '$[?(@.status==\"ACTIVE\")]')")
	cmd.Flags().StringVar(&f.sort, "sort", "",
		fmt.Sprintf("field to order by: %s (default %s)", strings.Join(sortKeys, ", "), defaultSort))
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort in descending order")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output format: json, yaml or list")
	cmd.Flags().BoolVarP(&f.script, "script", "s", false, "print the list without interaction")
}

// defaultListOptions lists in API order, used to feed pickers.
var defaultListOptions = driving.ListOptions{}

func (f *listFlags) options() (driving.ListOptions, error) {
	if err := validateOutput(f.output, listOutputs); err != nil {
		return driving.ListOptions{}, err
	}
	return driving.ListOptions{Sort: f.sort, Desc: f.desc, Filter: f.filter}, nil
}

// registerObjectOutput adds the -o flag of commands printing one object.
func registerObjectOutput(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "", "output format: json, yaml or description")
}

// spin runs fn behind the spinner when it is enabled.
func spin[T any](cmd *cobra.Command, label string, fn func(context.Context) (T, error)) (T, error) {
	return spinner.Run(cmd.Context(), label, fn,
		spinner.WithEnabled(ui.spinner),
		spinner.WithOutput(errOut(cmd)),
		spinner.WithStyles(ui.styles),
	)
}

func spinErr(cmd *cobra.Command, label string, fn func(context.Context) error) error {
	_, err := spin(cmd, label, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func pickerItems[T any](v view[T], items []T) []picker.Item {
	rows := v.rows(items)
	out := make([]picker.Item, len(rows))
	for i, row := range rows {
		out[i] = picker.Item{Label: row[0], Detail: strings.Join(row[1:], "  ")}
	}
	return out
}

// pick asks the user to choose one of items and returns its id.
func pick[T any](ctx context.Context, title, kind string, v view[T], items []T, id func(T) string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: no %s to choose from", domain.ErrNotFound, kind)
	}
	idx, err := prompter.Select(ctx, title, pickerItems(v, items), 0)
	if err != nil {
		return "", err
	}
	return id(items[idx]), nil
}

// showList prints items, or lets the user browse them and describe one
// when the default format is used on a terminal.
func showList[T any](cmd *cobra.Command, title string, v view[T], items []T, f *listFlags) error {
	browse := (f.output == "" || f.output == outputList) && !f.script && ui.interactive && len(items) > 0
	if !browse {
		return printList(out(cmd), v, items, f.output)
	}

	idx, err := prompter.Select(cmd.Context(), title, pickerItems(v, items), 0)
	if errors.Is(err, domain.ErrCanceled) {
		return nil
	}
	if err != nil {
		return err
	}
	printDescription(out(cmd), v, items[idx])
	return nil
}

// withServiceName appends the --service-name flag to a printed command.
func withServiceName(command, serviceName string) string {
	return fmt.Sprintf("%s --service-name %s", command, serviceName)
}

func sourceID(s domain.Source) string                   { return s.ID }
func destinationID(d domain.Destination) string         { return d.ID }
func workflowID(w domain.Workflow) string               { return w.ID }
func jobID(j domain.Job) string                         { return j.ID }
func sourceConnectorID(c domain.SourceConnector) string { return c.ID }
func destinationConnectorID(c domain.DestinationConnector) string {
	return c.ID
}
