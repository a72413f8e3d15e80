package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the API configs and the selected project",
}

var configListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available configs",
	Args:    cobra.NoArgs,
	RunE:    runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Show a config and its stored context",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Select the config used by the following commands",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigSet,
}

var configSetServiceNameCmd = &cobra.Command{
	Use:   "set-service-name [service-name]",
	Short: "Select the cloud project used by the di commands",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigSetServiceName,
}

var (
	configListOutput string
	configOutput     string
)

func init() {
	configListCmd.Flags().StringVarP(&configListOutput, "output", "o", "", "output format: json, yaml or list")
	registerObjectOutput(configGetCmd, &configOutput)
	registerObjectOutput(configSetCmd, &configOutput)

	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configSetServiceNameCmd)
	rootCmd.AddCommand(configCmd)
}

func requireContext() error {
	if contextService == nil {
		return errors.New("context service not configured")
	}
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if err := requireContext(); err != nil {
		return err
	}
	if err := validateOutput(configListOutput, listOutputs); err != nil {
		return err
	}
	return printList(out(cmd), configView, contextService.Configs(), configListOutput)
}

// configNameArg returns args[0] or lets the user pick a config.
func configNameArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	configs := contextService.Configs()
	return pick(cmd.Context(), "Select a config", "config", configView, configs,
		func(c domain.ConfigView) string { return c.Name })
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := requireContext(); err != nil {
		return err
	}
	if err := validateOutput(configOutput, objectOutputs); err != nil {
		return err
	}
	name, err := configNameArg(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := contextService.Config(name)
	if err != nil {
		return err
	}
	return printObject(out(cmd), configView, *cfg, configOutput)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireContext(); err != nil {
		return err
	}
	if err := validateOutput(configOutput, objectOutputs); err != nil {
		return err
	}
	name, err := configNameArg(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := contextService.SetCurrentConfig(name)
	if err != nil {
		return err
	}
	return printObject(out(cmd), configView, *cfg, configOutput)
}

func runConfigSetServiceName(cmd *cobra.Command, args []string) error {
	if err := requireContext(); err != nil {
		return err
	}
	serviceName := ""
	if len(args) > 0 {
		serviceName = args[0]
	}
	if serviceName == "" {
		if accountService == nil {
			return errors.New("account service not configured")
		}
		projects, err := spin(cmd, "Loading projects", func(ctx context.Context) ([]domain.Project, error) {
			return accountService.Projects(ctx)
		})
		if err != nil {
			return err
		}
		if serviceName, err = pick(cmd.Context(), "Select a project", "project", projectView, projects,
			func(p domain.Project) string { return p.ProjectID }); err != nil {
			return err
		}
	}
	if err := contextService.SetServiceName(serviceName); err != nil {
		return err
	}
	printSuccess(out(cmd), fmt.Sprintf("Service name %s selected for %s", serviceName, contextService.CurrentConfig().Name))
	return nil
}
