package main

import (
	"fmt"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
	"github.com/iwvelando/homeloan-calculator/pkg/output"
	"github.com/iwvelando/homeloan-calculator/pkg/validation"
	"github.com/spf13/cobra"
)

// propertyFlags holds the flags that describe the property being priced.
type propertyFlags struct {
	basePrice        float64
	propertyType     string
	lotPrice         float64
	constructionCost float64
}

func (p *propertyFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&p.basePrice, "base-price", 0, "listed base price of the property")
	cmd.Flags().StringVar(&p.propertyType, "property-type", constants.PropertyTypeModelHouse, "property type (model-house, lot-only)")
	cmd.Flags().Float64Var(&p.lotPrice, "lot-price", 0, "lot component of a model house price")
	cmd.Flags().Float64Var(&p.constructionCost, "construction-cost", 0, "house construction component of a model house price")
	_ = cmd.MarkFlagRequired("base-price")
}

// input builds the engine input. Component prices are only passed on when
// their flags were set, so a missing one is reported by the engine.
func (p *propertyFlags) input(cmd *cobra.Command) (loans.PropertyInput, error) {
	propertyType, err := validation.ParsePropertyType(p.propertyType)
	if err != nil {
		return loans.PropertyInput{}, err
	}

	property := loans.PropertyInput{
		BasePrice:    p.basePrice,
		PropertyType: propertyType,
	}
	if cmd.Flags().Changed("lot-price") {
		lotPrice := p.lotPrice
		property.LotPrice = &lotPrice
	}
	if cmd.Flags().Changed("construction-cost") {
		constructionCost := p.constructionCost
		property.HouseConstructionCost = &constructionCost
	}
	return property, nil
}

func addOutputFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("output-format", "", "type of output override: pretty, csv, json, yaml, html")
}

// outputFormat returns the configured format after flag overrides.
func (a *app) outputFormat() (string, error) {
	outputFormat := a.conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}

func calculateCmd(a *app) *cobra.Command {
	var (
		property  propertyFlags
		financing string
		termYears int
		yearly    bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the full loan breakdown for a property",
		Long: `Compute the price breakdown, the 24-month down payment schedule and the
amortization schedule of the remaining balance for one financing option and term.`,
		Example: `  homeloan-calculator calculate --base-price 4707475 --lot-price 1200000 \
    --construction-cost 3507475 --financing in-house --term 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := property.input(cmd)
			if err != nil {
				return err
			}
			outputFormat, err := a.outputFormat()
			if err != nil {
				return err
			}

			calculator := loans.NewCalculator(a.logger)
			result, err := calculator.Calculate(loans.LoanRequest{
				Property:         input,
				FinancingOption:  financing,
				PaymentTermYears: termYears,
			}, a.conf.EngineSettings())
			if err != nil {
				return fmt.Errorf("failed to calculate loan: %w", err)
			}

			return output.WriteResult(cmd.OutOrStdout(), outputFormat, result, yearly)
		},
	}

	property.register(cmd)
	cmd.Flags().StringVar(&financing, "financing", constants.FinancingInHouse, "financing option value (see the options command)")
	cmd.Flags().IntVar(&termYears, "term", constants.MinTermYears, "payment term in years (5, 10, 15, 20, 25 or 30)")
	cmd.Flags().BoolVar(&yearly, "yearly", false, "roll the monthly schedules up by year")
	addOutputFormatFlag(cmd)

	return cmd
}

func breakdownCmd(a *app) *cobra.Command {
	var property propertyFlags

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Compute the all-in price of a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := property.input(cmd)
			if err != nil {
				return err
			}
			outputFormat, err := a.outputFormat()
			if err != nil {
				return err
			}

			breakdown, err := loans.NewCalculator(a.logger).Breakdown(input, a.conf.EngineSettings())
			if err != nil {
				return fmt.Errorf("failed to compute price breakdown: %w", err)
			}

			return output.WriteBreakdown(cmd.OutOrStdout(), outputFormat, breakdown)
		},
	}

	property.register(cmd)
	addOutputFormatFlag(cmd)

	return cmd
}

func optionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the active financing options and supported payment terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := a.outputFormat()
			if err != nil {
				return err
			}
			settings := a.conf.EngineSettings()
			return output.WriteOptions(cmd.OutOrStdout(), outputFormat, output.OptionsReport{
				FinancingOptions: loans.ActiveFinancingOptions(settings.FinancingOptions),
				PaymentTermYears: constants.SupportedTermYears,
			})
		},
	}

	addOutputFormatFlag(cmd)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Printing the version needs no configuration.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "homeloan-calculator %s\n", version)
		},
	}
}
