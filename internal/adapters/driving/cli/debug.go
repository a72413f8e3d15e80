package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/logger"
)

var debugCmd = &cobra.Command{
	Use:   "debug <session-id>",
	Short: "Print the log of a previous command",
	Long: `Print the log file of a previous command.

The session id is printed when a command fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	if err := requireContext(); err != nil {
		return err
	}
	id := args[0]
	if id == "" || filepath.Base(id) != id {
		return fmt.Errorf("%w: invalid session id %q", domain.ErrInvalidInput, id)
	}
	path := logger.SessionPath(logger.SessionDir(contextService.UUID()), id)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: no log for session %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	w := out(cmd)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read session log: %w", err)
	}
	fmt.Fprintf(w, "\nDebug file path=%s\n", path)
	return nil
}
