package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dafibh/riskradar/riskradar-backend/internal/analytics"
	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Print dimension scores, grade and insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := opts.loadProfile(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), opts.risk.Score(profile))
		},
	}
}

func newForecastCmd(opts *rootOptions) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project the profile forward and rescore it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := opts.loadProfile(cmd)
			if err != nil {
				return err
			}
			forecast, err := opts.risk.Forecast(profile, months)
			if err != nil {
				return fmt.Errorf("--months must be between 1 and %d: %w", domain.MaxForecastMonths, err)
			}
			return writeJSON(cmd.OutOrStdout(), forecast)
		},
	}
	cmd.Flags().IntVar(&months, "months", analytics.DefaultForecastMonths, "months to project ahead")
	return cmd
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var event string

	events := make([]string, len(domain.LifeEvents))
	for i, e := range domain.LifeEvents {
		events[i] = string(e)
	}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Stress test the profile against a life event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := opts.loadProfile(cmd)
			if err != nil {
				return err
			}
			result, err := opts.risk.LifeEvent(profile, domain.LifeEvent(event))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&event, "event", "", "life event: "+strings.Join(events, ", "))
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newInflationCmd(opts *rootOptions) *cobra.Command {
	var amount, years, rate float64

	cmd := &cobra.Command{
		Use:   "inflation",
		Short: "Show how inflation erodes an amount",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var yearsArg, rateArg *float64
			if cmd.Flags().Changed("years") {
				yearsArg = &years
			}
			if cmd.Flags().Changed("rate") {
				rateArg = &rate
			}
			impact, err := opts.risk.Inflation(amount, yearsArg, rateArg)
			if err != nil {
				return fmt.Errorf("invalid inflation parameters: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), impact)
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in rupees")
	cmd.Flags().Float64Var(&years, "years", analytics.DefaultInflationYears, "years to project")
	cmd.Flags().Float64Var(&rate, "rate", analytics.DefaultInflationRate, "annual inflation rate, e.g. 0.06")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
