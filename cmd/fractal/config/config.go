// Package configcmder provides the config command for managing persistent
// fractal configuration stored in the .fractal/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent fractal configuration.

Configuration is stored as config.toml in the .fractal/ directory and
provides default values for command flags. CLI flags always take precedence
over config file values.

Keys use dotted notation matching the TOML section structure:
  storage.driver, storage.sqlite_path, storage.postgres_dsn,
  api.listen,
  llm.device_a_url, llm.device_b_url, llm.main_reasoner_model,
  llm.graph_builder_model, llm.exploration_model, llm.timeout_seconds,
  llm.recent_messages,
  eventstream.provider, eventstream.brokers, eventstream.topic,
  client.api_target

Use subcommands to get, set, or list configuration values:
  fractal config set <key> <value>    Set a configuration value
  fractal config get <key>            Get a configuration value
  fractal config list                 List all configuration values

Examples:
  fractal config set storage.driver postgres
  fractal config set llm.device_a_url http://gpu-a:11434
  fractal config get llm.main_reasoner_model
  fractal config list`

const configShortDesc string = "Manage persistent fractal configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
