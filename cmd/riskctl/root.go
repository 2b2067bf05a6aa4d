package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/service"
)

// rootOptions holds flags shared by every subcommand
type rootOptions struct {
	profilePath string
	verbose     bool
	risk        *service.RiskService
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "riskctl",
		Short: "Score and stress test a personal financial profile",
		Long: `Score a personal financial profile across six risk dimensions and run
forecasts, life-event stress tests and inflation checks on it.

Profiles are YAML or JSON files with the fields monthlyIncome,
monthlyExpense, emergencyFund, monthlyEMI, monthlySaving, lifeCover,
healthCover (in lakhs), retirementCorpus, age and equityPercent.

Examples:
  riskctl score --profile me.yaml
  riskctl forecast --profile me.json --months 12
  riskctl simulate --profile me.yaml --event job_loss
  riskctl inflation --amount 100000 --years 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.profilePath, "profile", "p", "", "profile file (.yaml, .yml or .json; - for stdin)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	opts.risk = service.NewRiskService(nil)

	cmd.AddCommand(
		newScoreCmd(opts),
		newForecastCmd(opts),
		newSimulateCmd(opts),
		newInflationCmd(opts),
	)
	return cmd
}

// loadProfile reads the --profile file
func (o *rootOptions) loadProfile(cmd *cobra.Command) (domain.FinancialProfile, error) {
	var profile domain.FinancialProfile
	if o.profilePath == "" {
		return profile, fmt.Errorf("--profile is required")
	}

	var (
		data []byte
		err  error
	)
	if o.profilePath == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(o.profilePath)
	}
	if err != nil {
		return profile, fmt.Errorf("read profile: %w", err)
	}

	if strings.EqualFold(filepath.Ext(o.profilePath), ".json") {
		err = json.Unmarshal(data, &profile)
	} else {
		// YAML is a superset of JSON, so stdin accepts either
		err = yaml.Unmarshal(data, &profile)
	}
	if err != nil {
		return profile, fmt.Errorf("parse profile %s: %w", o.profilePath, err)
	}

	log.Debug().Str("path", o.profilePath).Msg("Loaded profile")
	return profile, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
