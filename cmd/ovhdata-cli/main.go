// Command ovhdata-cli manages OVHcloud Data Integration resources.
package main

import (
	"fmt"
	"os"

	"github.com/ovh/ovhdata-cli/internal/adapters/driven/config/file"
	"github.com/ovh/ovhdata-cli/internal/adapters/driven/ovhapi"
	"github.com/ovh/ovhdata-cli/internal/adapters/driving/cli"
	"github.com/ovh/ovhdata-cli/internal/core/services"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildTime=...".
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "open config: %v\n", err)
		os.Exit(1)
	}
	contexts := services.NewContextService(store)

	newClient := ovhapi.Factory(
		ovhapi.WithTimeout(contexts.Timeout()),
		ovhapi.WithRateLimit(contexts.RateLimit()),
		ovhapi.WithUserAgent(fmt.Sprintf("%s/%s", cli.CLIName, version)),
	)

	cli.SetServices(cli.Services{
		Context:         contexts,
		Auth:            services.NewAuthService(contexts, newClient),
		Account:         services.NewAccountService(contexts, newClient),
		DataIntegration: services.NewDataIntegrationService(contexts, newClient),
		WatchConfig:     store.Watch,
	})
	cli.SetVersion(version, buildTime)
	cli.Execute()
}
