package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var diSourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage sources",
}

var diSourceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List sources",
	Args:    cobra.NoArgs,
	RunE:    runSourceList,
}

var diSourceGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a source",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSourceGet,
}

var diSourceStatusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Get the last connection status of a source",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSourceStatus,
}

var diSourceMetadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Source metadata",
}

var diSourceMetadataGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get the metadata of a source",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSourceMetadataGet,
}

var diSourceMetadataExtractCmd = &cobra.Command{
	Use:   "extract [id]",
	Short: "Trigger the metadata extraction of a source",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSourceMetadataExtract,
}

var diSourceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a source",
	Long: `Create a source from a connector.

Without --connector-id the connector is chosen interactively. Mandatory
connector parameters missing from --parameter are prompted for.`,
	Args: cobra.ExactArgs(1),
	RunE: runSourceCreate,
}

var diSourceUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a source",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runSourceUpdate,
}

var diSourceDeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a source",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runSourceDelete,
}

var (
	sourceListFlags      listFlags
	sourceOutput         string
	sourceConnectorIDArg string
	sourceParameters     []string
	sourceScript         bool
)

func init() {
	sourceListFlags.register(diSourceListCmd, domain.SourceSortKeys, domain.SortName)
	for _, c := range []*cobra.Command{
		diSourceGetCmd, diSourceStatusCmd, diSourceMetadataGetCmd, diSourceMetadataExtractCmd,
		diSourceCreateCmd, diSourceUpdateCmd,
	} {
		registerObjectOutput(c, &sourceOutput)
	}
	diSourceCreateCmd.Flags().StringVar(&sourceConnectorIDArg, "connector-id", "", "connector ID (interactive if not set)")
	for _, c := range []*cobra.Command{diSourceCreateCmd, diSourceUpdateCmd} {
		c.Flags().StringArrayVarP(&sourceParameters, "parameter", "p", nil, "connector parameter as name=value (repeatable)")
	}
	diSourceDeleteCmd.Flags().BoolVarP(&sourceScript, "script", "s", false, "never prompt for confirmation")

	diSourceMetadataCmd.AddCommand(diSourceMetadataGetCmd, diSourceMetadataExtractCmd)
	diSourceCmd.AddCommand(diSourceListCmd, diSourceGetCmd, diSourceStatusCmd, diSourceMetadataCmd,
		diSourceCreateCmd, diSourceUpdateCmd, diSourceDeleteCmd)
	diCmd.AddCommand(diSourceCmd)
}

func runSourceList(cmd *cobra.Command, _ []string) error {
	if _, err := requireDI(); err != nil {
		return err
	}
	opts, err := sourceListFlags.options()
	if err != nil {
		return err
	}
	sources, err := spin(cmd, "Loading sources", func(ctx context.Context) ([]domain.Source, error) {
		return diService.ListSources(ctx, opts)
	})
	if err != nil {
		return err
	}
	return showList(cmd, "Sources", sourceView, sources, &sourceListFlags)
}

// sourceIDArg returns args[0] or lets the user pick a source, printing the
// equivalent command when it did.
func sourceIDArg(cmd *cobra.Command, args []string, serviceName, command string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	sources, err := diService.ListSources(cmd.Context(), defaultListOptions)
	if err != nil {
		return "", err
	}
	id, err := pick(cmd.Context(), "Select a source", "source", sourceView, sources, sourceID)
	if err != nil {
		return "", err
	}
	printCommand(out(cmd), withServiceName(fmt.Sprintf("di source %s %s", command, id), serviceName))
	return id, nil
}

func runSourceGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(sourceOutput, objectOutputs); err != nil {
		return err
	}
	id, err := sourceIDArg(cmd, args, serviceName, "get")
	if err != nil {
		return err
	}
	source, err := diService.GetSource(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printObject(out(cmd), sourceView, *source, sourceOutput)
}

func runSourceStatus(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(sourceOutput, objectOutputs); err != nil {
		return err
	}
	id, err := sourceIDArg(cmd, args, serviceName, "status")
	if err != nil {
		return err
	}
	status, err := diService.SourceStatus(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printObject(out(cmd), statusView, *status, sourceOutput)
}

func runSourceMetadataGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(sourceOutput, objectOutputs); err != nil {
		return err
	}
	id, err := sourceIDArg(cmd, args, serviceName, "metadata get")
	if err != nil {
		return err
	}
	tables, err := spin(cmd, "Loading metadata", func(ctx context.Context) ([]domain.TableMeta, error) {
		return diService.SourceMetadata(ctx, id)
	})
	if err != nil {
		return err
	}
	return printMetadata(cmd, tables)
}

func runSourceMetadataExtract(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(sourceOutput, objectOutputs); err != nil {
		return err
	}
	id, err := sourceIDArg(cmd, args, serviceName, "metadata extract")
	if err != nil {
		return err
	}
	tables, err := spin(cmd, "Extracting metadata", func(ctx context.Context) ([]domain.TableMeta, error) {
		return diService.ExtractSourceMetadata(ctx, id)
	})
	if err != nil {
		return err
	}
	return printMetadata(cmd, tables)
}

func printMetadata(cmd *cobra.Command, tables []domain.TableMeta) error {
	switch sourceOutput {
	case outputJSON, outputYAML:
		return printList(out(cmd), tableMetaView, tables, sourceOutput)
	default:
		printTable(out(cmd), tableMetaView, tables)
		return nil
	}
}

func runSourceCreate(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(sourceOutput, objectOutputs); err != nil {
		return err
	}
	given, err := domain.ParseParameters(sourceParameters)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	connectorID := sourceConnectorIDArg
	pickedConnector := connectorID == ""
	if pickedConnector {
		connectors, err := diService.SourceConnectors(ctx)
		if err != nil {
			return err
		}
		connectorID, err = pick(ctx, "Select a source connector", "source connector",
			sourceConnectorView, connectors, sourceConnectorID)
		if err != nil {
			return err
		}
	}
	connector, err := diService.SourceConnector(ctx, connectorID)
	if err != nil {
		return err
	}

	parameters, prompted, err := resolveParameters(ctx, given, nil, connector.Parameters)
	if err != nil {
		return err
	}
	spec := domain.SourceSpec{Name: args[0], ConnectorID: &connectorID, Parameters: parameters}

	if pickedConnector || prompted {
		shown := spec
		shown.Parameters = hideSecretParameters(spec.Parameters, connector.Parameters)
		printDescription(out(cmd), sourceSpecView, shown)
		printCommand(out(cmd), withServiceName(
			fmt.Sprintf("di source create %s --connector-id %s %s", spec.Name, connectorID,
				domain.FormatParameters(shown.Parameters)), serviceName))
		if err := confirmOrCancel(fmt.Sprintf("Do you want to create the source %s?", spec.Name), "create source"); err != nil {
			return err
		}
	}

	source, err := spin(cmd, "Creating source", func(ctx context.Context) (*domain.Source, error) {
		return diService.CreateSource(ctx, spec)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), sourceView, *source, sourceOutput)
}

func runSourceUpdate(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(sourceOutput, objectOutputs); err != nil {
		return err
	}
	given, err := domain.ParseParameters(sourceParameters)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	id, err := sourceIDArg(cmd, args, serviceName, "update")
	if err != nil {
		return err
	}
	current, err := diService.GetSource(ctx, id)
	if err != nil {
		return err
	}
	connector, err := diService.SourceConnector(ctx, current.ConnectorID)
	if err != nil {
		return err
	}

	interactive := len(args) < 2
	var name string
	if interactive {
		if name, err = prompter.Input("Enter the new source name", current.Name); err != nil {
			return err
		}
	} else {
		name = args[1]
	}

	parameters, prompted, err := resolveParameters(ctx, given, current.Parameters, connector.Parameters)
	if err != nil {
		return err
	}
	spec := domain.SourceSpec{Name: name, Parameters: parameters}

	if interactive || prompted {
		shown := spec
		shown.Parameters = hideSecretParameters(spec.Parameters, connector.Parameters)
		printDescription(out(cmd), sourceSpecView, shown)
		printCommand(out(cmd), withServiceName(
			fmt.Sprintf("di source update %s %s %s", id, spec.Name, domain.FormatParameters(shown.Parameters)),
			serviceName))
		if err := confirmOrCancel(fmt.Sprintf("Do you want to update the source %s?", id), "update source"); err != nil {
			return err
		}
	}

	source, err := spin(cmd, "Updating source", func(ctx context.Context) (*domain.Source, error) {
		return diService.UpdateSource(ctx, id, spec)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), sourceView, *source, sourceOutput)
}

func runSourceDelete(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	id, err := sourceIDArg(cmd, args, serviceName, "delete")
	if err != nil {
		return err
	}
	if !sourceScript {
		if err := confirmOrCancel(fmt.Sprintf("Are you sure you want to delete the source %s?", id), "delete source"); err != nil {
			return err
		}
	}
	if err := spinErr(cmd, "Deleting source", func(ctx context.Context) error {
		return diService.DeleteSource(ctx, id)
	}); err != nil {
		return err
	}
	printSuccess(out(cmd), fmt.Sprintf("Source %s successfully deleted", id))
	return nil
}
