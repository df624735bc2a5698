package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/inline"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/util"
)

func init() {
	rootCmd.AddCommand(linksCmd)

	linksCmd.Flags().BoolP("json", "j", false, "Print the listing as a JSON document")
	linksCmd.Flags().StringP("episodes", "e", "", "Episode selector applied to every season")
	linksCmd.Flags().StringP("output", "o", "", "Write the listing to a file instead of stdout")
}

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List transcript links without downloading them",
	Long: `Read the category page and print every transcript link, grouped by season.

Episode selectors:
  first - first episode of each season
  last - last episode of each season
  all - every episode
  [number] - episode by index (starting from 0)
  [from]-[to] - episodes by index range
  @[substring]@ - episodes whose title contains substring`,
	Example: "  tscribe links --season pilot --json\n  tscribe links -e 0-2",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := newSource()
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		episodes := mo.None[inline.EpisodesFilter]()
		if description := lo.Must(cmd.Flags().GetString("episodes")); description != "" {
			filter, err := inline.ParseEpisodesFilter(description)
			handleErr(err)
			episodes = mo.Some(filter)
		}

		options := &inline.Options{
			Out:      writer,
			Source:   src,
			URL:      viper.GetString(key.SourceURL),
			Seasons:  viper.GetStringSlice(key.DownloadSeasons),
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Episodes: episodes,
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	linksCmd.AddCommand(linksSchemaCmd)
}

var linksSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the links --json output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}
