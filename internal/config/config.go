// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/iwvelando/mortgage-planner/internal/planner"
	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/period"
)

// Configuration holds all configuration for mortgage-planner.
type Configuration struct {
	Loan        LoanConfig
	Overpayment OverpaymentConfig
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoanConfig holds the loan parameters to compute a schedule for.
type LoanConfig struct {
	Amount       float64
	InterestRate float64
	TermMonths   int
	PaymentStyle string
	StartDate    string // "YYYY-MM"; empty means the current month
}

// OverpaymentConfig holds the overpayment plan parameters.
type OverpaymentConfig struct {
	BaseAmount float64
	Effect     string
	Custom     map[string]float64 // period number -> amount
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoanInput converts the configured loan into adapter input. An unset start
// date defaults to the period containing now.
func (c *Configuration) LoanInput(now time.Time) planner.LoanInput {
	startDate := c.Loan.StartDate
	if startDate == "" {
		startDate = period.At(now).String()
	}

	return planner.LoanInput{
		Amount:            c.Loan.Amount,
		AnnualRatePercent: c.Loan.InterestRate,
		TermMonths:        c.Loan.TermMonths,
		PaymentStyle:      c.Loan.PaymentStyle,
		StartDate:         startDate,
	}
}

// OverpaymentInput converts the configured overpayment plan into adapter
// input. Custom entries with unparseable period numbers are dropped.
func (c *Configuration) OverpaymentInput() planner.OverpaymentInput {
	custom := make(map[int]float64, len(c.Overpayment.Custom))
	for key, amount := range c.Overpayment.Custom {
		month, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		custom[month] = amount
	}

	return planner.OverpaymentInput{
		BaseAmount: c.Overpayment.BaseAmount,
		Effect:     c.Overpayment.Effect,
		Custom:     custom,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors are left to the adapter's validation.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Loan.PaymentStyle == "" {
		warnings = append(warnings, "paymentStyle not set; defaulting to 'equal'")
	}

	if c.Loan.StartDate == "" {
		warnings = append(warnings, "startDate not set; defaulting to the current month")
	}

	if c.Overpayment.BaseAmount > c.Loan.Amount && c.Loan.Amount > 0 {
		warnings = append(warnings, "base overpayment exceeds the loan principal; it will be capped each period")
	}

	for key := range c.Overpayment.Custom {
		month, err := strconv.Atoi(key)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("custom overpayment period %q is not a number and will be ignored", key))
			continue
		}
		if month > c.Loan.TermMonths && c.Loan.TermMonths > 0 {
			warnings = append(warnings, fmt.Sprintf("custom overpayment for period %d is beyond the %d-month term", month, c.Loan.TermMonths))
		}
	}

	if c.Output.Format != "" && c.Output.Format != constants.OutputFormatPretty && c.Output.Format != constants.OutputFormatCSV {
		warnings = append(warnings, fmt.Sprintf("unknown output format %q; defaulting to %s", c.Output.Format, constants.OutputFormatPretty))
	}

	return warnings
}
