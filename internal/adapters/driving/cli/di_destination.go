package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var diDestinationCmd = &cobra.Command{
	Use:     "destination",
	Aliases: []string{"dest"},
	Short:   "Manage destinations",
}

var diDestinationListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List destinations",
	Args:    cobra.NoArgs,
	RunE:    runDestinationList,
}

var diDestinationGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a destination",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDestinationGet,
}

var diDestinationStatusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Get the last connection status of a destination",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDestinationStatus,
}

var diDestinationCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a destination",
	Long: `Create a destination from a connector.

Without --connector-id the connector is chosen interactively. Mandatory
connector parameters missing from --parameter are prompted for.`,
	Args: cobra.ExactArgs(1),
	RunE: runDestinationCreate,
}

var diDestinationUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a destination",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runDestinationUpdate,
}

var diDestinationDeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a destination",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runDestinationDelete,
}

var (
	destinationListFlags      listFlags
	destinationOutput         string
	destinationConnectorIDArg string
	destinationParameters     []string
	destinationScript         bool
)

func init() {
	destinationListFlags.register(diDestinationListCmd, domain.SourceSortKeys, domain.SortName)
	for _, c := range []*cobra.Command{
		diDestinationGetCmd, diDestinationStatusCmd, diDestinationCreateCmd, diDestinationUpdateCmd,
	} {
		registerObjectOutput(c, &destinationOutput)
	}
	diDestinationCreateCmd.Flags().StringVar(&destinationConnectorIDArg, "connector-id", "",
		"connector ID (interactive if not set)")
	for _, c := range []*cobra.Command{diDestinationCreateCmd, diDestinationUpdateCmd} {
		c.Flags().StringArrayVarP(&destinationParameters, "parameter", "p", nil,
			"connector parameter as name=value (repeatable)")
	}
	diDestinationDeleteCmd.Flags().BoolVarP(&destinationScript, "script", "s", false, "never prompt for confirmation")

	diDestinationCmd.AddCommand(diDestinationListCmd, diDestinationGetCmd, diDestinationStatusCmd,
		diDestinationCreateCmd, diDestinationUpdateCmd, diDestinationDeleteCmd)
	diCmd.AddCommand(diDestinationCmd)
}

func runDestinationList(cmd *cobra.Command, _ []string) error {
	if _, err := requireDI(); err != nil {
		return err
	}
	opts, err := destinationListFlags.options()
	if err != nil {
		return err
	}
	destinations, err := spin(cmd, "Loading destinations", func(ctx context.Context) ([]domain.Destination, error) {
		return diService.ListDestinations(ctx, opts)
	})
	if err != nil {
		return err
	}
	return showList(cmd, "Destinations", destinationView, destinations, &destinationListFlags)
}

func destinationIDArg(cmd *cobra.Command, args []string, serviceName, command string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	destinations, err := diService.ListDestinations(cmd.Context(), defaultListOptions)
	if err != nil {
		return "", err
	}
	id, err := pick(cmd.Context(), "Select a destination", "destination", destinationView, destinations, destinationID)
	if err != nil {
		return "", err
	}
	printCommand(out(cmd), withServiceName(fmt.Sprintf("di destination %s %s", command, id), serviceName))
	return id, nil
}

func runDestinationGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(destinationOutput, objectOutputs); err != nil {
		return err
	}
	id, err := destinationIDArg(cmd, args, serviceName, "get")
	if err != nil {
		return err
	}
	destination, err := diService.GetDestination(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printObject(out(cmd), destinationView, *destination, destinationOutput)
}

func runDestinationStatus(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(destinationOutput, objectOutputs); err != nil {
		return err
	}
	id, err := destinationIDArg(cmd, args, serviceName, "status")
	if err != nil {
		return err
	}
	status, err := diService.DestinationStatus(cmd.Context(), id)
	if err != nil {
		return err
	}
	return printObject(out(cmd), statusView, *status, destinationOutput)
}

func runDestinationCreate(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(destinationOutput, objectOutputs); err != nil {
		return err
	}
	given, err := domain.ParseParameters(destinationParameters)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	connectorID := destinationConnectorIDArg
	pickedConnector := connectorID == ""
	if pickedConnector {
		connectors, err := diService.DestinationConnectors(ctx)
		if err != nil {
			return err
		}
		connectorID, err = pick(ctx, "Select a destination connector", "destination connector",
			destinationConnectorView, connectors, destinationConnectorID)
		if err != nil {
			return err
		}
	}
	connector, err := diService.DestinationConnector(ctx, connectorID)
	if err != nil {
		return err
	}

	parameters, prompted, err := resolveParameters(ctx, given, nil, connector.Parameters)
	if err != nil {
		return err
	}
	spec := domain.DestinationSpec{Name: args[0], ConnectorID: &connectorID, Parameters: parameters}

	if pickedConnector || prompted {
		shown := spec
		shown.Parameters = hideSecretParameters(spec.Parameters, connector.Parameters)
		printDescription(out(cmd), destinationSpecView, shown)
		printCommand(out(cmd), withServiceName(
			fmt.Sprintf("di destination create %s --connector-id %s %s", spec.Name, connectorID,
				domain.FormatParameters(shown.Parameters)), serviceName))
		if err := confirmOrCancel(fmt.Sprintf("Do you want to create the destination %s?", spec.Name),
			"create destination"); err != nil {
			return err
		}
	}

	destination, err := spin(cmd, "Creating destination", func(ctx context.Context) (*domain.Destination, error) {
		return diService.CreateDestination(ctx, spec)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), destinationView, *destination, destinationOutput)
}

func runDestinationUpdate(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(destinationOutput, objectOutputs); err != nil {
		return err
	}
	given, err := domain.ParseParameters(destinationParameters)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	id, err := destinationIDArg(cmd, args, serviceName, "update")
	if err != nil {
		return err
	}
	current, err := diService.GetDestination(ctx, id)
	if err != nil {
		return err
	}
	connector, err := diService.DestinationConnector(ctx, current.ConnectorID)
	if err != nil {
		return err
	}

	interactive := len(args) < 2
	var name string
	if interactive {
		if name, err = prompter.Input("Enter the new destination name", current.Name); err != nil {
			return err
		}
	} else {
		name = args[1]
	}

	parameters, prompted, err := resolveParameters(ctx, given, current.Parameters, connector.Parameters)
	if err != nil {
		return err
	}
	spec := domain.DestinationSpec{Name: name, Parameters: parameters}

	if interactive || prompted {
		shown := spec
		shown.Parameters = hideSecretParameters(spec.Parameters, connector.Parameters)
		printDescription(out(cmd), destinationSpecView, shown)
		printCommand(out(cmd), withServiceName(
			fmt.Sprintf("di destination update %s %s %s", id, spec.Name, domain.FormatParameters(shown.Parameters)),
			serviceName))
		if err := confirmOrCancel(fmt.Sprintf("Do you want to update the destination %s?", id),
			"update destination"); err != nil {
			return err
		}
	}

	destination, err := spin(cmd, "Updating destination", func(ctx context.Context) (*domain.Destination, error) {
		return diService.UpdateDestination(ctx, id, spec)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), destinationView, *destination, destinationOutput)
}

func runDestinationDelete(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	id, err := destinationIDArg(cmd, args, serviceName, "delete")
	if err != nil {
		return err
	}
	if !destinationScript {
		if err := confirmOrCancel(fmt.Sprintf("Are you sure you want to delete the destination %s?", id),
			"delete destination"); err != nil {
			return err
		}
	}
	if err := spinErr(cmd, "Deleting destination", func(ctx context.Context) error {
		return diService.DeleteDestination(ctx, id)
	}); err != nil {
		return err
	}
	printSuccess(out(cmd), fmt.Sprintf("Destination %s successfully deleted", id))
	return nil
}
