package main

import (
	"fmt"

	"msme-carbon/internal/dto"
	"msme-carbon/internal/models"

	"github.com/spf13/cobra"
)

func newIndustriesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "industries [sector]",
		Short: "List the declared sectors, or show one sector with its vocabulary and weightages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := a.buildStack(cmd.Context(), nil, nil, nil)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				industries := stack.classifier.GetAllIndustries()
				return writeOutput(cmd.OutOrStdout(), format, dto.IndustriesResponse{
					Industries: industries,
					Count:      len(industries),
				})
			}

			sector, ok := models.ParseSector(args[0])
			if !ok {
				return fmt.Errorf("unknown sector: %s", args[0])
			}
			detail := dto.IndustryDetailResponse{Industry: stack.classifier.GetIndustryInfo(sector)}
			if model, ok := stack.classifier.GetSectorModel(sector); ok {
				detail.Model = model
			}
			return writeOutput(cmd.OutOrStdout(), format, detail)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", formatYAML, "output format: json or yaml")
	return cmd
}
