package cmd

import (
	"fmt"

	"isl94202-go/drivers/isl94202"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type fieldDoc struct {
	Name      string   `yaml:"name"`
	Desc      string   `yaml:"desc"`
	Addr      string   `yaml:"addr"`
	Bits      string   `yaml:"bits"`
	Mask      string   `yaml:"mask"`
	Kind      string   `yaml:"kind"`
	ScaleBits uint8    `yaml:"scale_bits,omitempty"`
	Table     []uint16 `yaml:"thresholds_mv,omitempty"`
}

func docFor(f isl94202.Field) fieldDoc {
	bits := fmt.Sprintf("%d", f.Hi())
	if f.Width() > 1 {
		bits = fmt.Sprintf("%d:%d", f.Hi(), f.Shift)
	}
	d := fieldDoc{
		Name:      f.Name,
		Desc:      f.Desc,
		Addr:      fmt.Sprintf("0x%02X", f.Addr),
		Bits:      bits,
		Mask:      fmt.Sprintf("0x%04X", f.Mask),
		Kind:      f.Kind.String(),
		ScaleBits: f.ScaleBits,
	}
	if t, ok := isl94202.ThresholdFor(f); ok {
		d.Table = append([]uint16(nil), t[:]...)
	}
	return d
}

func newFieldsCmd() *cobra.Command {
	var asYAML bool
	c := &cobra.Command{
		Use:   "fields",
		Short: "List every configuration field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := isl94202.Fields()
			out := cmd.OutOrStdout()
			if asYAML {
				docs := make([]fieldDoc, 0, len(fs))
				for _, f := range fs {
					docs = append(docs, docFor(f))
				}
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(docs); err != nil {
					return wrap("fields", err)
				}
				return enc.Close()
			}
			for _, f := range fs {
				d := docFor(f)
				fmt.Fprintf(out, "%-6s %s [%5s] %-5s %s\n", d.Name, d.Addr, d.Bits, d.Kind, d.Desc)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asYAML, "yaml", false, "emit YAML")
	return c
}
