package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres"
	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/entitytype"
	"github.com/heartmarshall/centralring-backend/internal/service/catalog"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Register the built-in entity types",
		Long: `Registers the built-in entity types. Types whose id is already taken
are left untouched, so the command is safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			svc := catalog.NewService(e.logger, entitytype.New(e.pool), entity.New(e.pool), postgres.NewTxManager(e.pool))
			created, err := svc.SeedBuiltinTypes(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d built-in types\n", created, len(catalog.BuiltinTypes()))
			return nil
		},
	}
}
