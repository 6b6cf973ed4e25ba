package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/servedir/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "servedir",
	Short:   "A minimal file server with upload support and Basic Auth",
	Long: `servedir is a tiny yet powerful static file server.
It supports file uploads, HTTP basic authentication, and directory
listings out of the box. Ideal for quick sharing or development
environments.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFiles, _ := cmd.Flags().GetStringSlice("config")

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}
		setupLogging(cfg)

		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringSlice("config", nil, "config file path(s) (default: ./config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
