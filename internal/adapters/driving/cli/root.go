// Package cli implements the ovhdata-cli commands on top of cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/styles"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
	"github.com/ovh/ovhdata-cli/internal/logger"
)

// CLIName is the binary name shown in hints.
const CLIName = "ovhdata-cli"

var (
	version   = "dev"
	buildTime = "unknown"
)

// Services injected by the composition root.
var (
	contextService driving.ContextService
	authService    driving.AuthService
	accountService driving.AccountService
	diService      driving.DataIntegrationService
	watchConfig    func(ctx context.Context) error
)

// Services groups the use cases the commands call.
type Services struct {
	Context         driving.ContextService
	Auth            driving.AuthService
	Account         driving.AccountService
	DataIntegration driving.DataIntegrationService

	// WatchConfig, when set, reloads the context file on change until ctx
	// is done. Long-running commands start it.
	WatchConfig func(ctx context.Context) error
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	contextService = s.Context
	authService = s.Auth
	accountService = s.Account
	diService = s.DataIntegration
	watchConfig = s.WatchConfig
}

// SetVersion sets the version info.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Global flags.
var (
	rootServiceName string
	rootVerbose     int
	rootJSONLog     bool
	rootNoColor     bool
	rootNoSpinner   bool
)

// uiState holds the presentation toggles decided once per invocation.
type uiState struct {
	styles      *styles.Styles
	spinner     bool
	interactive bool
}

var ui = uiState{styles: styles.PlainStyles()}

var rootCmd = &cobra.Command{
	Use:   CLIName,
	Short: "OVHcloud Data Integration command line",
	Long: `ovhdata-cli manages OVHcloud Data Integration resources: sources,
destinations, connectors, workflows and jobs.

Get started:
  ovhdata-cli login                        Store your API credentials
  ovhdata-cli config set-service-name      Select the cloud project to work on
  ovhdata-cli di source list               List the sources of the project`,
	Version:           fmt.Sprintf("%s (built %s)", version, buildTime),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootServiceName, "service-name", "", "cloud project to use for this command only")
	flags.CountVarP(&rootVerbose, "verbose", "v", "verbosity level (-v info, -vv debug)")
	flags.BoolVar(&rootJSONLog, "json-log", false, "write log lines as JSON")
	flags.BoolVar(&rootNoColor, "no-color", false, "disable colored output")
	flags.BoolVar(&rootNoSpinner, "no-spinner", false, "disable the progress spinner")
}

// setup applies the global flags before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbosity(rootVerbose)
	logger.SetJSON(rootJSONLog)
	logger.SetOutput(cmd.ErrOrStderr())

	if contextService != nil {
		dir := logger.SessionDir(contextService.UUID())
		if _, err := logger.OpenSession(dir, logger.NewSessionID()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "unable to open session log: %v\n", err)
		}
		if rootServiceName != "" {
			contextService.OverrideServiceName(rootServiceName)
		}
	}
	logger.Section(cmd.CommandPath())

	stdoutTTY := isTerminal(os.Stdout)
	stderrTTY := isTerminal(os.Stderr)

	ui.styles = styles.PlainStyles()
	if stdoutTTY && !rootNoColor {
		ui.styles = styles.DefaultStyles()
	}
	ui.spinner = stderrTTY && !rootNoSpinner
	ui.interactive = stdoutTTY && isTerminal(os.Stdin)
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command and exits on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("%v", err)
		printFailure(os.Stderr, err)
		_ = logger.Close()
		os.Exit(1)
	}
	_ = logger.Close()
}

// printFailure writes err followed by a hint on how to dig further.
func printFailure(w io.Writer, err error) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.styles.Error.Render("✘ "+err.Error()))
	fmt.Fprintln(w)

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		fmt.Fprintf(w, "You are not logged in for this config. Run:\n> %s login\n\n", CLIName)
	case errors.Is(err, domain.ErrNoServiceName):
		fmt.Fprintf(w, "No cloud project selected. Run:\n> %s config set-service-name\n"+
			"or pass --service-name to a single command.\n\n", CLIName)
	}

	if sid := logger.SessionID(); logger.IsVerbose() && sid != "" {
		fmt.Fprintln(w, "To print the full logs of this command:")
		fmt.Fprintf(w, "> %s debug %s\n", CLIName, sid)
		return
	}
	fmt.Fprintln(w, `You may use the -v option to see what is going on "under the hood".`)
}
