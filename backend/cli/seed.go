package cli

import (
	"fmt"
	"os"

	"khelkhatm/backend/seed"

	"github.com/spf13/cobra"
)

func NewSeedCommand(opts *Options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all questions and concepts with the curriculum",
		Long: `Replace every DSA question and CS concept with a fresh curriculum, all
marked TODO. Daily logs are kept.

Without --file the built-in curriculum is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(file)
			if err != nil {
				return err
			}

			env, err := opts.env()
			if err != nil {
				return err
			}

			res, err := seed.Apply(cmd.Context(), env.Repo, catalog)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d questions and %d concepts\n", res.Questions, res.Concepts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML curriculum to load instead of the built-in one")
	return cmd
}

func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return seed.Load(f)
}
