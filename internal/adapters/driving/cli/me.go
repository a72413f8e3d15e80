package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the account you are logged in with",
	Args:  cobra.NoArgs,
	RunE:  runMe,
}

var meOutput string

func init() {
	registerObjectOutput(meCmd, &meOutput)
	rootCmd.AddCommand(meCmd)
}

func runMe(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}
	if err := validateOutput(meOutput, objectOutputs); err != nil {
		return err
	}
	me, err := spin(cmd, "Loading account", func(ctx context.Context) (*domain.Me, error) {
		return accountService.Me(ctx)
	})
	if err != nil {
		return err
	}
	return printObject(out(cmd), meView, *me, meOutput)
}
