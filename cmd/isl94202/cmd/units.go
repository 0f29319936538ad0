package cmd

import (
	"fmt"
	"strings"
	"time"

	"isl94202-go/drivers/isl94202"
	"isl94202-go/errcode"

	"github.com/spf13/cobra"
)

var tables = map[string]isl94202.ThresholdTable{
	"ocd": isl94202.OCDThresholds(),
	"occ": isl94202.OCCThresholds(),
	"scd": isl94202.SCDThresholds(),
}

func newThresholdCmd() *cobra.Command {
	var code, mV uint16
	c := &cobra.Command{
		Use:       "threshold ocd|occ|scd",
		Short:     "Translate between threshold codes and millivolts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"ocd", "occ", "scd"},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := tables[strings.ToLower(args[0])]
			if !ok {
				return &errcode.E{C: errcode.InvalidParams, Op: "threshold", Msg: "unknown table " + args[0]}
			}
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("mv") {
				got, err := t.CodeFor(mV)
				if err != nil {
					return wrap("threshold", err)
				}
				fmt.Fprintf(out, "code %d = %d mV\n", got, t[got])
				return nil
			}
			v, err := t.Lookup(code)
			if err != nil {
				return wrap("threshold", err)
			}
			fmt.Fprintf(out, "code %d = %d mV\n", code, v)
			return nil
		},
	}
	c.Flags().Uint16Var(&code, "code", 0, "3-bit threshold code")
	c.Flags().Uint16Var(&mV, "mv", 0, "threshold in mV (picks the smallest code at or above)")
	c.MarkFlagsMutuallyExclusive("code", "mv")
	return c
}

func newDelayCmd() *cobra.Command {
	var name string
	var raw uint16
	var set time.Duration
	c := &cobra.Command{
		Use:   "delay",
		Short: "Decode or encode a delay word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupField(strings.ToUpper(name))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("set") {
				next, err := isl94202.EncodeDelay(raw, f, set)
				if err != nil {
					return wrap("delay", err)
				}
				fmt.Fprintf(out, "0x%04X\n", next)
				return nil
			}
			n, u, err := isl94202.SplitDelay(raw, f)
			if err != nil {
				return wrap("delay", err)
			}
			fmt.Fprintf(out, "%d %s = %s\n", n, u, time.Duration(n)*u.Duration())
			return nil
		},
	}
	c.Flags().StringVar(&name, "field", "", "delay field mnemonic (e.g. OVDT)")
	c.Flags().Uint16Var(&raw, "raw", 0, "raw 16-bit word")
	c.Flags().DurationVar(&set, "set", 0, "encode this duration into the word")
	_ = c.MarkFlagRequired("field")
	return c
}
