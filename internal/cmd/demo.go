package cmd

import (
	"fmt"
	"strings"

	"github.com/machinefabric/managers-go"
	"github.com/machinefabric/managers-go/driver"
	"github.com/machinefabric/managers-go/logger"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run one of the per-manager demonstrations",
	Long: fmt.Sprintf(`Run a demonstration on a fresh context.

Available demos: %s

"manager3-unchecked" prints Manager3's resource without checking it, which
faults on the very first construction. "all" runs the checked demos in order
on one context, so Manager3 takes the failing factory attempt and Manager4
succeeds.`, strings.Join(driver.DemoNames(), ", ")),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: driver.DemoNames(),
	RunE:      runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	name := "all"
	if len(args) == 1 {
		name = args[0]
	}

	opts, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c := managers.NewContext(opts...)
	defer func() { _ = c.Close() }()

	return driver.RunDemo(cmd.OutOrStdout(), c, name)
}
