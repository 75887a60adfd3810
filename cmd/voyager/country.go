package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voyagerhq/voyager/pkg/types"
)

var countryCmd = &cobra.Command{
	Use:   "country",
	Short: "Browse country reference data",
}

var countryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := exec.Select(subject(), types.TableCountries, nil)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(cmd.OutOrStdout(), rows)
		}
		for _, r := range rows {
			c := types.CountryFromRow(r)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s %s\n", c.Iso2, c.Name, c.Continent)
		}
		return nil
	},
}

var countryGetCmd = &cobra.Command{
	Use:   "get <iso2>",
	Short: "Show one country by ISO2 code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := countryByIso2(subject(), args[0])
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(cmd.OutOrStdout(), row)
		}
		c := types.CountryFromRow(row)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\ncapital: %s\ncontinent: %s\nlanguage: %s (%s)\ncurrency: %s (%s)\n",
			c.Name, c.Iso2, c.Capital, c.Continent,
			c.PrimaryLanguage, c.PrimaryLanguageCode,
			c.PrimaryCurrency, c.PrimaryCurrencyCode)
		return nil
	},
}

func init() {
	countryCmd.AddCommand(countryListCmd)
	countryCmd.AddCommand(countryGetCmd)
}
