package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/config"
	"github.com/tscribe-cli/tscribe/style"
	"github.com/tscribe-cli/tscribe/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables tscribe reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		// variable name -> what applies when it is unset
		fallbacks := lo.SliceToMap(config.EnvExposed, func(k string) (string, string) {
			field := config.Default[k]
			return field.Env(), fmt.Sprint(field.Value)
		})
		fallbacks[where.EnvConfigPath] = "platform config dir"

		names := lo.Keys(fallbacks)
		slices.Sort(names)

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range names {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if present {
				cmd.Printf("%s=%s\n", name(env), style.Fg(color.Green)(value))
			} else {
				cmd.Printf("%s %s\n", name(env), style.Faint("unset, using "+fallbacks[env]))
			}
		}
	},
}
