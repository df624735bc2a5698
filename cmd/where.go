package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/style"
	"github.com/tscribe-cli/tscribe/where"
)

type wherePath struct {
	flag  string
	short string
	label string
	path  func() string
}

var wherePaths = []wherePath{
	{"config", "c", "Config directory", where.Config},
	{"providers", "p", "Custom site profiles", where.Providers},
	{"output", "o", "Transcript output", where.Output},
	{"manifest", "m", "Resume manifest", where.Manifest},
	{"logs", "l", "Logs", where.Logs},
	{"cache", "", "Cache", where.Cache},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, p := range wherePaths {
		whereCmd.Flags().BoolP(p.flag, p.short, false, "Print only the "+p.flag+" path")
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(p wherePath, _ int) string {
		return p.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where tscribe keeps its files",
	Example: "  tscribe where\n  cd \"$(tscribe where --output)\"",
	Run: func(cmd *cobra.Command, args []string) {
		if chosen, ok := lo.Find(wherePaths, func(p wherePath) bool {
			return lo.Must(cmd.Flags().GetBool(p.flag))
		}); ok {
			cmd.Println(chosen.path())
			return
		}

		label := style.New().Bold(true).Foreground(color.Purple).Render
		for _, p := range wherePaths {
			path := p.path()
			cmd.Printf("%s %s\n", label(p.label), style.Faint("--"+p.flag))

			if exists, _ := filesystem.API().Exists(path); exists {
				cmd.Println(path)
			} else {
				cmd.Println(path, style.Fg(color.Yellow)("(not created yet)"))
			}
		}
	},
}
