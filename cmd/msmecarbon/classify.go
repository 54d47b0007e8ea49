package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"msme-carbon/internal/dto"
	"msme-carbon/internal/errors"
	"msme-carbon/internal/models"
	"msme-carbon/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type classifyOptions struct {
	sender   string
	region   string
	amount   string
	category string
	format   string
}

func newClassifyCmd(a *app) *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify a payment notification, or one notification per stdin line when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openIndicatorDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db, a.logger)

			stack, err := a.buildStack(cmd.Context(), db, nil, nil)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				out, err := classifyOne(cmd.Context(), stack, opts, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), opts.format, out)
			}

			outs, err := classifyLines(cmd.Context(), stack, opts, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, outs)
		},
	}

	cmd.Flags().StringVar(&opts.sender, "sender", "", "sender ID of the notification, e.g. AD-TEXTILE")
	cmd.Flags().StringVar(&opts.region, "region", "", "region hint: north, south, east, west or central")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "transaction amount to assess")
	cmd.Flags().StringVar(&opts.category, "category", "", "transaction category of the assessed amount")
	cmd.Flags().StringVarP(&opts.format, "format", "o", formatJSON, "output format: json or yaml")
	return cmd
}

func classifyOne(ctx context.Context, stack *classifierStack, opts *classifyOptions, text string) (*dto.AssessResponse, error) {
	if opts.amount == "" {
		req := dto.ClassifyRequest{Text: text, Sender: opts.sender, RegionHint: opts.region}
		if err := validation.GetValidator().Struct(req); err != nil {
			return nil, invalidInput(err)
		}
		return &dto.AssessResponse{
			Classification: stack.classifier.ClassifyIndustryWithRegion(ctx, text, opts.sender, opts.region),
		}, nil
	}

	req := dto.AssessRequest{
		Text:       text,
		Sender:     opts.sender,
		RegionHint: opts.region,
		Amount:     opts.amount,
		Category:   opts.category,
	}
	if err := validation.GetValidator().Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", req.Amount, err)
	}

	result := stack.classifier.ClassifyIndustryWithRegion(ctx, text, opts.sender, opts.region)
	category := models.TransactionCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	assessment, err := stack.assessor.Assess(ctx, result, amount, category)
	if err != nil {
		return nil, err
	}
	return &dto.AssessResponse{Classification: result, Assessment: assessment}, nil
}

func classifyLines(ctx context.Context, stack *classifierStack, opts *classifyOptions, in io.Reader) ([]*dto.AssessResponse, error) {
	outs := make([]*dto.AssessResponse, 0)
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		out, err := classifyOne(ctx, stack, opts, text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		outs = append(outs, out)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return outs, nil
}

func invalidInput(err error) error {
	return errors.Wrap(errors.ValidationGeneral, fmt.Errorf("invalid input: %s", strings.Join(validation.Details(err), "; ")))
}
