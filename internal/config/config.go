// Package config defines the data structures related to configuration
// and includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/jjsiesto/fine3300-a2/pkg/constants"
	"github.com/jjsiesto/fine3300-a2/pkg/mortgage"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the assignment tools.
type Configuration struct {
	Mortgage MortgageConfig
	CPI      CPIConfig     `yaml:"cpi,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// MortgageConfig holds the loan parameters for the payment calculator.
// QuotedRate is a percentage as quoted (5.5 for 5.5%), compounded
// semi-annually.
type MortgageConfig struct {
	Principal         float64
	QuotedRate        float64 `yaml:"quotedRate"`
	AmortizationYears int     `yaml:"amortizationYears"`
	TermYears         int     `yaml:"termYears,omitempty"`
}

// CPIConfig holds the inputs for the CPI and minimum wage analysis.
type CPIConfig struct {
	DataDir          string  `yaml:"dataDir"`
	WagesFile        string  `yaml:"wagesFile"`
	BaseJurisdiction string  `yaml:"baseJurisdiction,omitempty"`
	BaseSalary       float64 `yaml:"baseSalary,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output destination configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Workbook string `yaml:"workbook,omitempty"` // Excel file for schedules
	Plot     string `yaml:"plot,omitempty"`     // PNG file for balance decline
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
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

	configuration.applyDefaults()
	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if c.Output.Workbook == "" {
		c.Output.Workbook = constants.DefaultWorkbookFile
	}
	if c.Output.Plot == "" {
		c.Output.Plot = constants.DefaultPlotFile
	}
	if c.CPI.BaseJurisdiction == "" {
		c.CPI.BaseJurisdiction = constants.DefaultBaseJurisdiction
	}
	if c.CPI.BaseSalary == 0 {
		c.CPI.BaseSalary = constants.DefaultBaseSalary
	}
}

// Terms converts the configured loan parameters into engine terms for
// one payment scheme. The quoted percentage becomes a decimal fraction.
func (c *Configuration) Terms(frequency mortgage.Frequency) mortgage.Terms {
	return mortgage.Terms{
		Principal:         c.Mortgage.Principal,
		QuotedRate:        c.Mortgage.QuotedRate / constants.PercentageMultiplier,
		AmortizationYears: c.Mortgage.AmortizationYears,
		Frequency:         frequency,
	}
}

// ValidateMortgage performs general validation of the mortgage section
// and returns warnings. Hard input errors surface from the engine.
func (c *Configuration) ValidateMortgage() []string {
	var warnings []string
	if c.Mortgage.QuotedRate > constants.PercentageMultiplier/4 {
		warnings = append(warnings, fmt.Sprintf(
			"quoted rate %.2f%% is unusually high; rates are quoted as percentages (5.5 for 5.5%%)",
			c.Mortgage.QuotedRate))
	}
	if c.Mortgage.TermYears > c.Mortgage.AmortizationYears {
		warnings = append(warnings, fmt.Sprintf(
			"term of %d years exceeds the %d year amortization",
			c.Mortgage.TermYears, c.Mortgage.AmortizationYears))
	}
	return warnings
}
