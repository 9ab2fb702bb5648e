package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/machinefabric/managers-go"
	"github.com/machinefabric/managers-go/cbor"
	"github.com/machinefabric/managers-go/driver"
	"github.com/machinefabric/managers-go/logger"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Run the driver on a fresh context and print a snapshot of every manager",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringP("format", "f", "json", "snapshot format: json or cbor (hex encoded)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "json" && format != "cbor" {
		return fmt.Errorf("unknown format %q (want json or cbor)", format)
	}

	opts, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c := managers.NewContext(opts...)
	defer func() { _ = c.Close() }()

	if err := driver.Run(io.Discard, c); err != nil {
		return err
	}
	snap := c.Snapshot()

	out := cmd.OutOrStdout()
	if format == "cbor" {
		data, err := cbor.EncodeSnapshot(snap)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, hex.EncodeToString(data))
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err := managers.ValidateSnapshotJSON(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
