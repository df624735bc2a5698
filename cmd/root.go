// Package cmd implements the tscribe command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/config"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/icon"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/network"
	"github.com/tscribe-cli/tscribe/pipeline"
	"github.com/tscribe-cli/tscribe/provider"
	"github.com/tscribe-cli/tscribe/query"
	"github.com/tscribe-cli/tscribe/scraper"
	"github.com/tscribe-cli/tscribe/style"
	"github.com/tscribe-cli/tscribe/util"
	"github.com/tscribe-cli/tscribe/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (emoji, nerd, plain, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("url", "u", "", "Category page listing the transcripts")
	lo.Must0(viper.BindPFlag(key.SourceURL, rootCmd.PersistentFlags().Lookup("url")))

	rootCmd.PersistentFlags().StringP("provider", "p", "", "Site profile used to read the pages")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", completionProviders))
	lo.Must0(viper.BindPFlag(key.SourceProvider, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().StringSliceP("season", "s", []string{}, "Only process seasons matching these patterns")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("season", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DownloadSeasons, rootCmd.PersistentFlags().Lookup("season")))

	rootCmd.Flags().StringP("mode", "m", "", "Download mode: basic, advanced (resume + manifest) or ask")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{constant.ModeBasic, constant.ModeAdvanced, constant.ModeAsk}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DownloadMode, rootCmd.Flags().Lookup("mode")))

	rootCmd.Flags().StringP("output", "o", "", "Directory to write transcripts to")
	lo.Must0(viper.BindPFlag(key.DownloadOutput, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().IntP("delay", "d", 0, "Pause between requests, in milliseconds")
	lo.Must0(viper.BindPFlag(key.DownloadDelayMs, rootCmd.Flags().Lookup("delay")))

	rootCmd.Flags().BoolP("dry-run", "n", false, "List the transcripts that would be downloaded and exit")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context(), cmd.OutOrStdout(), network.New())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Download wiki episode transcripts as plain text",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Download wiki episode transcripts as plain text"),
	Example: "  tscribe --mode advanced --season \"Season 1\"\n  tscribe -u https://adventuretime.fandom.com/wiki/Category_talk:Transcripts -o transcripts",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(config.Validate())

		mode, err := resolveMode(viper.GetString(key.DownloadMode))
		handleErr(err)

		src, err := newSource()
		handleErr(err)

		seasons := viper.GetStringSlice(key.DownloadSeasons)

		options := pipeline.Options{
			URL:          viper.GetString(key.SourceURL),
			OutputDir:    viper.GetString(key.DownloadOutput),
			Resume:       mode == constant.ModeAdvanced,
			ManifestName: viper.GetString(key.DownloadManifest),
			Delay:        time.Duration(viper.GetInt(key.DownloadDelayMs)) * time.Millisecond,
			Seasons:      seasons,
			DryRun:       lo.Must(cmd.Flags().GetBool("dry-run")),
			Source:       src,
			Out:          cmd.OutOrStdout(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Infof("starting %s run against %s", mode, options.URL)
		summary, err := pipeline.Run(ctx, options)
		if errors.Is(err, context.Canceled) {
			downloaded := 0
			if summary != nil {
				downloaded = summary.Downloaded()
			}
			fmt.Fprintf(os.Stderr, "%s interrupted, %s on disk\n", icon.Get(icon.Warn), util.Quantify(downloaded, "transcript", "transcripts"))
			os.Exit(130)
		}
		handleErr(err)

		// remember filters that selected at least one season
		if len(summary.Seasons) > 0 {
			for _, pattern := range seasons {
				_ = query.Remember(pattern, 1)
			}
		}

		if !options.DryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s Download complete! Transcripts saved in '%s' directory\n",
				icon.Get(icon.Success), options.OutputDir)
		}
	},
}

// newSource wires the configured provider to the default HTTP client.
func newSource() (*scraper.Scraper, error) {
	name := viper.GetString(key.SourceProvider)
	p, ok := provider.Get(name)
	if !ok {
		return nil, fmt.Errorf("provider not found: %s", name)
	}

	return scraper.New(network.New(), p), nil
}

func completionProviders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
