package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"isl94202-go/drivers/isl94202"
	"isl94202-go/errcode"

	"github.com/spf13/cobra"
)

// describe renders v for f with its physical meaning where one exists.
func describe(w io.Writer, raw uint16, f isl94202.Field) error {
	v := isl94202.Extract(raw, f)
	fmt.Fprintf(w, "%-6s = 0x%03X (%d)", f.Name, v, v)
	switch f.Kind {
	case isl94202.KindDelay:
		n, u, err := isl94202.SplitDelay(raw, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %d %s = %s", n, u, time.Duration(n)*u.Duration())
	case isl94202.KindCode:
		mV, err := isl94202.LookupThreshold(raw, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %d mV", mV)
	case isl94202.KindFlag:
		if v != 0 {
			fmt.Fprint(w, "  on")
		} else {
			fmt.Fprint(w, "  off")
		}
	}
	fmt.Fprintln(w)
	return nil
}

func newDecodeCmd() *cobra.Command {
	var addr uint8
	var raw uint16
	c := &cobra.Command{
		Use:   "decode",
		Short: "Decode every field of a configuration word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := isl94202.FieldsAt(addr)
			if len(fs) == 0 {
				return &errcode.E{C: errcode.InvalidParams, Op: "decode", Msg: fmt.Sprintf("no fields at 0x%02X", addr)}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "0x%02X = 0x%04X\n", addr, raw)
			for _, f := range fs {
				if err := describe(out, raw, f); err != nil {
					return wrap("decode", err)
				}
			}
			return nil
		},
	}
	c.Flags().Uint8Var(&addr, "addr", 0, "register address (e.g. 0x16)")
	c.Flags().Uint16Var(&raw, "raw", 0, "raw 16-bit word")
	_ = c.MarkFlagRequired("addr")
	return c
}

func newEncodeCmd() *cobra.Command {
	var name string
	var raw, value uint16
	var truncate bool
	c := &cobra.Command{
		Use:   "encode",
		Short: "Insert a value into one field of a word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupField(strings.ToUpper(name))
			if err != nil {
				return err
			}
			var next uint16
			if truncate {
				next = isl94202.InsertTruncate(raw, f, value)
			} else if next, err = isl94202.Insert(raw, f, value); err != nil {
				return wrap("encode", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "0x%04X\n", next)
			return nil
		},
	}
	c.Flags().StringVar(&name, "field", "", "field mnemonic (e.g. OCD)")
	c.Flags().Uint16Var(&raw, "raw", 0, "current 16-bit word")
	c.Flags().Uint16Var(&value, "value", 0, "field value")
	c.Flags().BoolVar(&truncate, "truncate", false, "drop bits that do not fit instead of failing")
	_ = c.MarkFlagRequired("field")
	return c
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the built-in field table for overlaps and bad masks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := isl94202.Validate(); err != nil {
				return wrap("validate", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d fields\n", len(isl94202.Fields()))
			return nil
		},
	}
}
