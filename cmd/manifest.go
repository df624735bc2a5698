package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/icon"
	"github.com/tscribe-cli/tscribe/manifest"
	"github.com/tscribe-cli/tscribe/style"
	"github.com/tscribe-cli/tscribe/where"
)

func init() {
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect the resume manifest written by advanced mode",
}

func init() {
	manifestCmd.AddCommand(manifestShowCmd)

	manifestShowCmd.Flags().StringP("path", "P", "", "Manifest to read instead of the one in the output directory")
	manifestShowCmd.Flags().BoolP("json", "j", false, "Print the manifest as JSON")
	manifestShowCmd.SetOut(os.Stdout)
}

var manifestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print what the last advanced run downloaded",
	Run: func(cmd *cobra.Command, args []string) {
		path := lo.Must(cmd.Flags().GetString("path"))
		if path == "" {
			path = where.Manifest()
		}

		m, err := manifest.Load(path)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(m))
			return
		}

		if m.Seasons.Len() == 0 {
			cmd.Printf("%s no manifest at %s\n", icon.Get(icon.Warn), path)
			return
		}

		cmd.Printf("%s %s\n", icon.Get(icon.Manifest), style.Faint("last updated "+m.LastUpdated))
		for pair := m.Seasons.Oldest(); pair != nil; pair = pair.Next() {
			downloaded := m.Downloaded(pair.Key)
			counts := fmt.Sprintf("%d/%d", downloaded, pair.Value.TotalEpisodes)
			if downloaded < pair.Value.TotalEpisodes {
				counts = style.Fg(color.Yellow)(counts)
			} else {
				counts = style.Fg(color.Green)(counts)
			}
			cmd.Printf("%s: %s downloaded\n", pair.Key, counts)
		}
	},
}
