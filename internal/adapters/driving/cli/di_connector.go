package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var diSourceConnectorCmd = &cobra.Command{
	Use:   "source-connector",
	Short: "Browse source connectors",
}

var diSourceConnectorListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List source connectors",
	Args:    cobra.NoArgs,
	RunE:    runSourceConnectorList,
}

var diSourceConnectorGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a source connector and its parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSourceConnectorGet,
}

var diDestinationConnectorCmd = &cobra.Command{
	Use:   "destination-connector",
	Short: "Browse destination connectors",
}

var diDestinationConnectorListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List destination connectors",
	Args:    cobra.NoArgs,
	RunE:    runDestinationConnectorList,
}

var diDestinationConnectorGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a destination connector and its parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDestinationConnectorGet,
}

var (
	connectorListFlags listFlags
	connectorOutput    string
)

func init() {
	for _, c := range []*cobra.Command{diSourceConnectorListCmd, diDestinationConnectorListCmd} {
		c.Flags().StringVarP(&connectorListFlags.output, "output", "o", "", "output format: json, yaml or list")
		c.Flags().BoolVarP(&connectorListFlags.script, "script", "s", false, "print the list without interaction")
	}
	for _, c := range []*cobra.Command{diSourceConnectorGetCmd, diDestinationConnectorGetCmd} {
		registerObjectOutput(c, &connectorOutput)
	}

	diSourceConnectorCmd.AddCommand(diSourceConnectorListCmd, diSourceConnectorGetCmd)
	diDestinationConnectorCmd.AddCommand(diDestinationConnectorListCmd, diDestinationConnectorGetCmd)
	diCmd.AddCommand(diSourceConnectorCmd, diDestinationConnectorCmd)
}

func runSourceConnectorList(cmd *cobra.Command, _ []string) error {
	if _, err := requireDI(); err != nil {
		return err
	}
	if err := validateOutput(connectorListFlags.output, listOutputs); err != nil {
		return err
	}
	connectors, err := spin(cmd, "Loading source connectors", func(ctx context.Context) ([]domain.SourceConnector, error) {
		return diService.SourceConnectors(ctx)
	})
	if err != nil {
		return err
	}
	return showList(cmd, "Source connectors", sourceConnectorView, connectors, &connectorListFlags)
}

func runSourceConnectorGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(connectorOutput, objectOutputs); err != nil {
		return err
	}
	ctx := cmd.Context()
	var id string
	if len(args) > 0 && args[0] != "" {
		id = args[0]
	} else {
		connectors, err := diService.SourceConnectors(ctx)
		if err != nil {
			return err
		}
		if id, err = pick(ctx, "Select a source connector", "source connector",
			sourceConnectorView, connectors, sourceConnectorID); err != nil {
			return err
		}
		printCommand(out(cmd), withServiceName("di source-connector get "+id, serviceName))
	}
	connector, err := diService.SourceConnector(ctx, id)
	if err != nil {
		return err
	}
	if err := printObject(out(cmd), sourceConnectorView, *connector, connectorOutput); err != nil {
		return err
	}
	printConnectorParameters(cmd, connector.Parameters)
	return nil
}

func runDestinationConnectorList(cmd *cobra.Command, _ []string) error {
	if _, err := requireDI(); err != nil {
		return err
	}
	if err := validateOutput(connectorListFlags.output, listOutputs); err != nil {
		return err
	}
	connectors, err := spin(cmd, "Loading destination connectors",
		func(ctx context.Context) ([]domain.DestinationConnector, error) {
			return diService.DestinationConnectors(ctx)
		})
	if err != nil {
		return err
	}
	return showList(cmd, "Destination connectors", destinationConnectorView, connectors, &connectorListFlags)
}

func runDestinationConnectorGet(cmd *cobra.Command, args []string) error {
	serviceName, err := requireDI()
	if err != nil {
		return err
	}
	if err := validateOutput(connectorOutput, objectOutputs); err != nil {
		return err
	}
	ctx := cmd.Context()
	var id string
	if len(args) > 0 && args[0] != "" {
		id = args[0]
	} else {
		connectors, err := diService.DestinationConnectors(ctx)
		if err != nil {
			return err
		}
		if id, err = pick(ctx, "Select a destination connector", "destination connector",
			destinationConnectorView, connectors, destinationConnectorID); err != nil {
			return err
		}
		printCommand(out(cmd), withServiceName("di destination-connector get "+id, serviceName))
	}
	connector, err := diService.DestinationConnector(ctx, id)
	if err != nil {
		return err
	}
	if err := printObject(out(cmd), destinationConnectorView, *connector, connectorOutput); err != nil {
		return err
	}
	printConnectorParameters(cmd, connector.Parameters)
	return nil
}

// printConnectorParameters adds the parameter table under a described connector.
func printConnectorParameters(cmd *cobra.Command, ps []domain.ConnectorParameter) {
	if connectorOutput != "" && connectorOutput != outputDescription {
		return
	}
	if len(ps) == 0 {
		return
	}
	fmt.Fprintln(out(cmd))
	printTable(out(cmd), connectorParameterView, ps)
}
