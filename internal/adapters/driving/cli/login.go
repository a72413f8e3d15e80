package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with OVHcloud API keys",
	Long: `Log in with an application key, application secret and consumer key.

Keys missing from the flags are asked for. The keys are checked against
the API of the selected config before being stored.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored credentials of the selected config",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var (
	loginApplicationKey    string
	loginConsumerKey       string
	loginApplicationSecret string
	loginOutput            string
)

const loginHowTo = `To create API keys, open %s
and grant the following rights:
  GET    /*
  POST   /*
  PUT    /*
  DELETE /*
Then enter the generated keys below.
`

const loginSuccessHelp = `Next steps:
  ovhdata-cli config set-service-name   select the cloud project to work on
  ovhdata-cli di workflow list          list the workflows of that project
`

func init() {
	f := loginCmd.Flags()
	f.StringVarP(&loginApplicationKey, "application-key", "a", "", "application key")
	f.StringVarP(&loginConsumerKey, "consumer-key", "c", "", "consumer key")
	f.StringVarP(&loginApplicationSecret, "application-secret", "s", "", "application secret")
	registerObjectOutput(loginCmd, &loginOutput)

	rootCmd.AddCommand(loginCmd, logoutCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil || contextService == nil {
		return errors.New("auth service not configured")
	}
	if err := validateOutput(loginOutput, objectOutputs); err != nil {
		return err
	}

	creds := domain.Credentials{
		ApplicationKey:    loginApplicationKey,
		ApplicationSecret: loginApplicationSecret,
		ConsumerKey:       loginConsumerKey,
	}
	interactive := !creds.IsComplete()
	if interactive {
		if err := checkCurrentCredentials(cmd); err != nil {
			return err
		}
		fmt.Fprintf(out(cmd), loginHowTo, contextService.CurrentConfig().CreateTokenURL)

		var err error
		if creds.ApplicationKey == "" {
			if creds.ApplicationKey, err = askRequired("Application Key", false); err != nil {
				return err
			}
		}
		if creds.ApplicationSecret == "" {
			if creds.ApplicationSecret, err = askRequired("Application Secret", true); err != nil {
				return err
			}
		}
		if creds.ConsumerKey == "" {
			if creds.ConsumerKey, err = askRequired("Consumer Key", false); err != nil {
				return err
			}
		}
	}

	details, err := authService.Login(cmd.Context(), creds)
	if err != nil {
		return err
	}
	if err := printObject(out(cmd), credentialView, *details, loginOutput); err != nil {
		return err
	}
	fmt.Fprintln(out(cmd))
	printSuccess(out(cmd), "You are now logged in.")
	if interactive {
		fmt.Fprint(out(cmd), loginSuccessHelp)
	}
	return nil
}

// checkCurrentCredentials shows the stored credentials, if any, and asks
// before replacing them.
func checkCurrentCredentials(cmd *cobra.Command) error {
	if _, ok := contextService.Credentials(); !ok {
		return nil
	}
	printSuccess(out(cmd), "Current connection infos...")
	details, err := authService.Current(cmd.Context())
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		printWarning(errOut(cmd), fmt.Sprintf("You are not authenticated: %v", err))
	case err != nil:
		return err
	default:
		if err := printObject(out(cmd), credentialView, *details, loginOutput); err != nil {
			return err
		}
	}
	return confirmOrCancel("Do you want to reset the current credentials?", "login")
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}
	if err := authService.Logout(); err != nil {
		return err
	}
	printSuccess(out(cmd), "You have successfully logged out!")
	return nil
}
