package version

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/network"
	"github.com/tscribe-cli/tscribe/style"
)

// Notify prints a notice to w when a newer release exists. Errors are only logged.
func Notify(ctx context.Context, w io.Writer, fetcher network.Fetcher) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	latest, err := Latest(ctx, fetcher)
	if err != nil {
		log.Debugf("version check: %s", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(constant.ReleasesURL+latest),
	)
}
