package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/alsgen/internal/model"
)

type configOptions struct {
	save string
}

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML: defaults, overlaid with --config,
overlaid with --ops and --predicate. With --save the result is written to a file
that can be passed back with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if opts.save != "" {
				return configStore.Save(m.Path(opts.save), cfg)
			}

			data, err := configStore.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&opts.save, "save", "", "write the configuration to this file instead of printing it")

	return cmd
}

func init() {
	rootCmd.AddCommand(configCmd)
}
