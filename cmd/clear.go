package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tscribe-cli/tscribe/icon"
	"github.com/tscribe-cli/tscribe/util"
	"github.com/tscribe-cli/tscribe/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"remembered season filters", "queries", mo.Some("q"), where.Queries},
	{"logs", "logs", mo.Some("l"), where.Logs},
	{"resume manifest", "manifest", mo.Some("m"), where.Manifest},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete caches, logs or the resume manifest",
	Run: func(cmd *cobra.Command, args []string) {
		chosen := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(chosen) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range chosen {
			erase := util.PrintErasable(cmd.OutOrStdout(), fmt.Sprintf("Clearing %s...", target.name))
			err := util.Delete(target.location())
			erase()

			if err != nil {
				fmt.Printf("%s %s: %s\n", icon.Get(icon.Skip), util.Capitalize(target.name), err)
				continue
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
