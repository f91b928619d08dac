package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bartile/internal/infra/persistence/model"
	"bartile/internal/infra/persistence/postgres"
	"bartile/internal/infra/seed"
	"bartile/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd, func(ctx context.Context, d deps) error {
				if err := postgres.Migrate(ctx, d.DB, model.AllModels()...); err != nil {
					return err
				}
				d.Logger.InfoContext(ctx, "Schema migrated")

				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the starter catalog from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return errors.Wrapf(err, "failed to open %s", file)
			}
			defer f.Close()

			catalog, err := seed.Load(f)
			if err != nil {
				return err
			}

			return withDeps(cmd, func(ctx context.Context, d deps) error {
				res, err := seed.Apply(ctx, d.TxManager, catalog, d.Logger)
				if err != nil {
					return err
				}

				for _, kind := range []string{"profiles", "colors", "textures", "houses"} {
					fmt.Fprintf(cmd.OutOrStdout(), "%-9s created %d, updated %d\n", kind, res.Created[kind], res.Updated[kind])
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "config/seed/catalog.yaml", "seed file")

	return cmd
}

func newCreateAdminCmd() *cobra.Command {
	var input usecase.CreateAdminInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input.Password == "" {
				input.Password = os.Getenv("BARTILE_ADMIN_PASSWORD")
			}

			return withDeps(cmd, func(ctx context.Context, d deps) error {
				user, err := d.AuthUC.CreateAdmin(ctx, input)
				if err != nil {
					return err
				}
				d.Logger.InfoContext(ctx, "Admin created", slog.String("user_id", user.ID.String()), slog.String("email", user.Email))

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&input.Name, "name", "", "display name, defaults to the email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password, or set BARTILE_ADMIN_PASSWORD")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
