package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voyagerhq/voyager/pkg/types"
)

var vibeCmd = &cobra.Command{
	Use:   "vibe",
	Short: "Browse and select travel vibes",
}

var vibeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vibes grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		categories, err := exec.Select(sub, types.TableVibeCategories, nil)
		if err != nil {
			return err
		}
		if flags.jsonMode {
			return printJSON(cmd.OutOrStdout(), categories)
		}
		for _, catRow := range categories {
			cat := types.VibeCategoryFromRow(catRow)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", cat.Title)
			vibes, err := exec.Select(sub, types.TableVibes, types.Row{"category_id": cat.ID})
			if err != nil {
				return err
			}
			for _, vr := range vibes {
				v := types.VibeFromRow(vr)
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s  (%s)\n", v.IconEmoji, v.Title, v.ID)
			}
		}
		return nil
	},
}

var vibePickCmd = &cobra.Command{
	Use:   "pick <vibe-id>",
	Short: "Select a vibe for the acting user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		if err := ensureProfile(sub); err != nil {
			return err
		}
		pick := &types.VibeUser{UserID: sub.ID, VibeID: args[0]}
		if _, err := exec.Insert(sub, types.TableVibesUsers, pick.Row()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Vibe selected")
		return nil
	},
}

var vibeDropCmd = &cobra.Command{
	Use:   "drop <vibe-id>",
	Short: "Unselect a vibe for the acting user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub := subject()
		key := types.Row{"user_id": sub.ID, "vibe_id": args[0]}
		if err := exec.Delete(sub, types.TableVibesUsers, key); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Vibe unselected")
		return nil
	},
}

func init() {
	vibeCmd.AddCommand(vibeListCmd)
	vibeCmd.AddCommand(vibePickCmd)
	vibeCmd.AddCommand(vibeDropCmd)
}
