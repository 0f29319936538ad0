package cmd

import (
	"fmt"
	"os"

	"isl94202-go/drivers/isl94202"
	"isl94202-go/errcode"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "isl94202",
		Short: "ISL94202 register map inspector",
		Long: `Decode and encode ISL94202 configuration words offline.

Examples:
  isl94202 fields --yaml                         # Dump the field table
  isl94202 decode --addr 0x16 --raw 0x34A0       # Decode every field in a word
  isl94202 encode --field OCD --raw 0x04A0 --value 3
  isl94202 threshold scd --code 7                # Threshold code to mV
  isl94202 delay --field OCDT --raw 0x04A0       # Delay word to duration
  isl94202 validate                              # Check the field table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newFieldsCmd(),
		newDecodeCmd(),
		newEncodeCmd(),
		newThresholdCmd(),
		newDelayCmd(),
		newValidateCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[isl94202] error:", err)
		os.Exit(1)
	}
}

func lookupField(name string) (isl94202.Field, error) {
	f, ok := isl94202.FieldByName(name)
	if !ok {
		return f, &errcode.E{C: errcode.UnknownField, Op: "lookup", Msg: name}
	}
	return f, nil
}
