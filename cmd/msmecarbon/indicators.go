package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"msme-carbon/internal/database"
	"msme-carbon/internal/dto"
	"msme-carbon/internal/errors"
	"msme-carbon/internal/models"
	"msme-carbon/internal/repositories"
	"msme-carbon/internal/services"
	"msme-carbon/internal/validation"

	"github.com/spf13/cobra"
)

func newIndicatorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indicators",
		Short: "Manage configured sender indicators used by merchant matching",
	}

	var note string
	add := &cobra.Command{
		Use:   "add <sector> <indicator>",
		Short: "Store a sender indicator for a sector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.AddIndicatorRequest{Sector: args[0], Indicator: args[1], Note: note}
			if err := validation.GetValidator().Struct(req); err != nil {
				return invalidInput(err)
			}
			sector, _ := models.ParseSector(req.Sector)

			return a.withIndicatorService(cmd.Context(), func(svc services.SenderIndicatorServiceInterface) error {
				row, err := svc.AddIndicator(cmd.Context(), sector, req.Indicator, req.Note)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %s -> %s\n", row.Indicator, row.SectorKey)
				return nil
			})
		},
	}
	add.Flags().StringVar(&note, "note", "", "free-form note stored with the indicator")

	var format string
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored sender indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withIndicatorService(cmd.Context(), func(svc services.SenderIndicatorServiceInterface) error {
				rows, err := svc.ListIndicators(cmd.Context())
				if err != nil {
					return err
				}
				if format == "table" {
					for _, row := range rows {
						state := "active"
						if !row.Active {
							state = "inactive"
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-24s %-8s %s\n", row.SectorKey, row.Indicator, state, row.Note)
					}
					return nil
				}
				return writeOutput(cmd.OutOrStdout(), format, rows)
			})
		},
	}
	list.Flags().StringVarP(&format, "format", "o", "table", "output format: table, json or yaml")

	deactivate := &cobra.Command{
		Use:   "deactivate <indicator>",
		Short: "Stop loading a sender indicator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withIndicatorService(cmd.Context(), func(svc services.SenderIndicatorServiceInterface) error {
				if err := svc.DeactivateIndicator(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deactivated %s\n", strings.ToLower(strings.TrimSpace(args[0])))
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, deactivate)
	return cmd
}

func (a *app) withIndicatorService(ctx context.Context, fn func(svc services.SenderIndicatorServiceInterface) error) error {
	registry, err := services.DefaultSectorRegistry()
	if err != nil {
		return err
	}

	db, err := a.openDB(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeDB(db, a.logger)

	return codedIndicatorError(fn(newIndicatorService(db, registry)))
}

var indicatorErrorCodes = []struct {
	sentinel error
	code     errors.ErrorCode
}{
	{services.ErrInvalidIndicator, errors.IndicatorInvalid},
	{services.ErrUnclassifiableSector, errors.IndicatorInvalid},
	{services.ErrIndicatorConflict, errors.IndicatorConflict},
	{services.ErrIndicatorExists, errors.IndicatorAlreadyExists},
	{services.ErrIndicatorNotFound, errors.IndicatorNotFound},
}

// codedIndicatorError prefixes known indicator failures with their error code
func codedIndicatorError(err error) error {
	for _, m := range indicatorErrorCodes {
		if stderrors.Is(err, m.sentinel) {
			return errors.Wrap(m.code, err)
		}
	}
	return err
}

func newIndicatorService(db *database.DB, registry *services.SectorRegistry) services.SenderIndicatorServiceInterface {
	return services.NewSenderIndicatorService(repositories.NewSenderIndicatorRepository(db.DB), registry, nil, nil)
}
