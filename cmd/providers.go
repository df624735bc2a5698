package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/icon"
	"github.com/tscribe-cli/tscribe/provider"
	"github.com/tscribe-cli/tscribe/style"
	"github.com/tscribe-cli/tscribe/transcript"
	"github.com/tscribe-cli/tscribe/where"
)

func init() {
	rootCmd.AddCommand(providersCmd)
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage site profiles",
}

func init() {
	providersCmd.AddCommand(providersListCmd)

	providersListCmd.Flags().BoolP("raw", "r", false, "Print ids only, without headers")
	providersListCmd.Flags().BoolP("custom", "c", false, "Only list custom profiles")
	providersListCmd.Flags().BoolP("builtin", "b", false, "Only list builtin profiles")

	providersListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	providersListCmd.SetOut(os.Stdout)
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin and custom site profiles",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.Blue).Bold(true).Render

		list := func(header string, providers []*provider.Provider) {
			if !raw {
				cmd.Println(headerStyle(header))
			}
			for _, p := range providers {
				if raw {
					cmd.Println(p.ID)
					continue
				}
				cmd.Printf("%s %s\n", p.ID, style.Faint(fmt.Sprintf("(%s: %s, links ending in %s)", p.Name, p.HeadingSelector, p.LinkSuffix)))
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			list("Builtin:", provider.Builtins())
		case lo.Must(cmd.Flags().GetBool("custom")):
			list("Custom:", provider.Customs())
		default:
			list("Builtin:", provider.Builtins())
			if !raw {
				cmd.Println()
			}
			list("Custom:", provider.Customs())
		}
	},
}

func init() {
	providersCmd.AddCommand(providersGenCmd)

	providersGenCmd.Flags().StringP("name", "n", "", "Display name of the new profile")
	providersGenCmd.Flags().String("heading", provider.Fandom.HeadingSelector, "Selector for season headings")
	providersGenCmd.Flags().StringSlice("tokens", provider.Fandom.SeasonTokens, "Heading substrings that mark a season")
	providersGenCmd.Flags().String("suffix", provider.Fandom.LinkSuffix, "Href suffix of transcript links")
	providersGenCmd.Flags().String("content", provider.Fandom.ContentSelector, "Selector for the transcript body")
	lo.Must0(providersGenCmd.MarkFlagRequired("name"))

	providersGenCmd.SetOut(os.Stdout)
}

var providersGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Write a new custom profile, starting from the fandom defaults",
	Run: func(cmd *cobra.Command, args []string) {
		name := lo.Must(cmd.Flags().GetString("name"))
		id := strings.ToLower(strings.TrimSuffix(transcript.Filename(name), ".txt"))

		p := &provider.Provider{
			ID:              id,
			Name:            name,
			HeadingSelector: lo.Must(cmd.Flags().GetString("heading")),
			SeasonTokens:    lo.Must(cmd.Flags().GetStringSlice("tokens")),
			LinkSuffix:      lo.Must(cmd.Flags().GetString("suffix")),
			ContentSelector: lo.Must(cmd.Flags().GetString("content")),
		}
		handleErr(p.Validate())

		data, err := json.MarshalIndent(p, "", "  ")
		handleErr(err)

		target := filepath.Join(where.Providers(), id+".json")
		handleErr(filesystem.API().WriteFile(target, data, 0o644))

		cmd.Println(target)
	},
}

func init() {
	providersCmd.AddCommand(providersRemoveCmd)

	providersRemoveCmd.Flags().StringArrayP("id", "i", []string{}, "Id of the custom profile(s) to remove")
	lo.Must0(providersRemoveCmd.RegisterFlagCompletionFunc("id", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Customs(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

var providersRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete custom profiles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range lo.Must(cmd.Flags().GetStringArray("id")) {
			path := filepath.Join(where.Providers(), id+".json")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(id))
		}
	},
}
