package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
	"github.com/reoring/propbin/hash"
)

func (a *app) encodeCmd() *cobra.Command {
	var (
		format string
		entry  string
	)
	cmd := &cobra.Command{
		Use:   "encode <asset-type> <input.json|input.yaml> <out>",
		Short: "Encode a JSON or YAML document into a single-entry PROP container",
		Long: `Encode reads the JSON rendering produced by decode (or the same structure
written as YAML) and writes the binary asset to <out>. Use "-" for stdout.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := a.reg.Record(args[0])
			if err != nil {
				return failed(args[0], err)
			}
			in, out := args[1], args[2]
			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			if format == "" {
				format = formatFromExt(in)
			}

			v := reflect.New(rd.Type).Interface()
			opt := a.cfg.DecodeOpt(a.log)
			var res propbin.Decoded[any]
			switch format {
			case "json":
				res, err = codec.UnmarshalJSON(a.reg, data, v, opt)
			case "yaml":
				res, err = codec.UnmarshalYAML(a.reg, data, v, opt)
			default:
				return fmt.Errorf("unknown input format %q (want json or yaml)", format)
			}
			if err != nil {
				return failed(in, err)
			}
			if res.Unknown > 0 {
				a.log.Warn("input keys ignored", zap.String("input", in), zap.Int("count", res.Unknown))
			}

			bin, err := codec.EncodeAsset(a.reg, v, hash.Name(entry))
			if err != nil {
				return failed(in, err)
			}
			if out == "-" {
				_, err = a.stdout.Write(bin)
				return err
			}
			if err := os.WriteFile(out, bin, 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			a.log.Debug("encoded", zap.String("record", rd.Name), zap.String("out", out), zap.Int("bytes", len(bin)))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format: json or yaml (default from the file extension)")
	cmd.Flags().StringVar(&entry, "entry", "0x0", "entry path name, hashed like a field name; 0x<hex> is taken literally")
	return cmd
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}
