package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/petlinks/internal/models"
	"github.com/mmynk/petlinks/internal/service"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *service.KennelService, _ *renderer) error {
				return svc.Init(ctx)
			})
		},
	}
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed the sample household and list Fido's owners",
		Long: `Seed Alice Smith and Bob Smith as owners of Fido, and Dr Charles The Vet
as someone linked to Fido who is not an owner, then print Fido's owners.`,
		Example: `  petlinks demo
  petlinks demo --output table --db-path /tmp/petlinks.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *service.KennelService, r *renderer) error {
				fido, err := svc.SeedDemo(ctx)
				if err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}

				owners, err := svc.Owners(ctx, fido)
				if err != nil {
					return err
				}
				return r.owners(fido, owners)
			})
		},
	}
}

func newOwnersCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "owners <dog-id>",
		Short:   "List the owners of a dog",
		Example: `  petlinks owners 1 --output json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dogID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withService(cmd, func(ctx context.Context, svc *service.KennelService, r *renderer) error {
				dog, err := svc.Dog(ctx, dogID)
				if err != nil {
					return err
				}

				owners, err := svc.Owners(ctx, dog)
				if err != nil {
					return err
				}
				return r.owners(dog, owners)
			})
		},
	}
}

func newLinksCommand() *cobra.Command {
	var dogID, personID int64

	cmd := &cobra.Command{
		Use:   "links",
		Short: "List the links of a dog or a person",
		Example: `  petlinks links --dog 1
  petlinks links --person 2 --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd, func(ctx context.Context, svc *service.KennelService, r *renderer) error {
				var (
					links []*models.PersonDogLink
					err   error
				)
				if cmd.Flags().Changed("dog") {
					links, err = svc.DogLinks(ctx, dogID)
				} else {
					links, err = svc.PersonLinks(ctx, personID)
				}
				if err != nil {
					return err
				}
				return r.links(links)
			})
		},
	}

	cmd.Flags().Int64Var(&dogID, "dog", 0, "dog ID")
	cmd.Flags().Int64Var(&personID, "person", 0, "person ID")
	cmd.MarkFlagsOneRequired("dog", "person")
	cmd.MarkFlagsMutuallyExclusive("dog", "person")

	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
