package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/alsgen/internal/domain"
	m "github.com/mouse-blink/alsgen/internal/model"
)

const (
	defaultAuxPath    = "aux.als"
	defaultOutputPath = "model_auto.als"
)

type generateOptions struct {
	aux    string
	output string
	only   []string
	stdout bool
}

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the specification document",
		Long: `Write the specification document. The output file is replaced atomically
and is left untouched when any step fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}
	addGenerateFlags(cmd, opts)

	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVarP(&opts.aux, "aux", "a", defaultAuxPath, "auxiliary definitions copied verbatim after the imports")
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutputPath, "destination of the generated document")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "emit only the named permutation checks (comma separated)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the document instead of writing --output")
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return workflow.Generate(domain.GenerateArgs{
		Config: cfg,
		Aux:    m.Path(opts.aux),
		Output: m.Path(opts.output),
		Only:   opts.only,
		Stdout: opts.stdout,
	})
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
