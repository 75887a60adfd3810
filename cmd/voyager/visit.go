package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voyagerhq/voyager/pkg/types"
)

var visitCmd = &cobra.Command{
	Use:   "visit",
	Short: "Track visited countries",
}

var visitAddCmd = &cobra.Command{
	Use:   "add <iso2>",
	Short: "Mark a country as visited",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		if err := ensureProfile(sub); err != nil {
			return err
		}
		country, err := countryByIso2(sub, args[0])
		if err != nil {
			return err
		}
		visit := &types.CountryVisited{UserID: sub.ID, CountryID: country["id"].(string)}
		if _, err := exec.Insert(sub, types.TableCountriesVisited, visit.Row()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Visited %s\n", args[0])
		return nil
	},
}

var visitRemoveCmd = &cobra.Command{
	Use:   "remove <iso2>",
	Short: "Unmark a visited country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		country, err := countryByIso2(sub, args[0])
		if err != nil {
			return err
		}
		key := types.Row{"user_id": sub.ID, "country_id": country["id"]}
		if err := exec.Delete(sub, types.TableCountriesVisited, key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed visit to %s\n", args[0])
		return nil
	},
}

var visitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the acting user's visited countries",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		visits, err := exec.Select(sub, types.TableCountriesVisited, nil)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(cmd.OutOrStdout(), visits)
		}
		for _, v := range visits {
			rows, err := exec.Select(sub, types.TableCountries, types.Row{"id": v["country_id"]})
			if err != nil {
				return err
			}
			if len(rows) == 1 {
				c := types.CountryFromRow(rows[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", c.Iso2, c.Name)
			}
		}
		return nil
	},
}

func init() {
	visitCmd.AddCommand(visitAddCmd)
	visitCmd.AddCommand(visitRemoveCmd)
	visitCmd.AddCommand(visitListCmd)
}
