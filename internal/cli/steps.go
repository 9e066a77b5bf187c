package cli

import (
	"github.com/spf13/cobra"

	"github.com/guruhq/landing/howitworks"
)

func newStepsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "steps [audience]",
		Short: "Print the How It Works steps as YAML",
		Long: `Print the effective How It Works steps, defaults overlaid with the
configured steps file, in the same YAML layout the steps file uses.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(howitworks.Students), string(howitworks.Tutors)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			audiences := howitworks.Audiences
			if len(args) == 1 {
				aud, err := howitworks.ParseAudience(args[0])
				if err != nil {
					return err
				}
				audiences = []howitworks.Audience{aud}
			}
			return catalog.Encode(cmd.OutOrStdout(), audiences...)
		},
	}
}
