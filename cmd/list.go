package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/alsgen/internal/domain"
)

type listOptions struct {
	only []string
}

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the checks a run would emit",
		Long:  "List every check of the document in emission order without reading or writing any file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return workflow.List(domain.ListArgs{Config: cfg, Only: opts.only})
		},
	}
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "list only the named permutation checks (comma separated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
