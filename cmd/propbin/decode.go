package main

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/codec"
)

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <asset-type> <input-path>...",
		Short: "Decode assets of one record type to JSON",
		Long: `Decode one or more PROP containers whose first entry is <asset-type> and
write one JSON document per input to stdout, in argument order. Inputs are
decoded concurrently; nothing is written unless every input decodes.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := a.reg.Record(args[0])
			if err != nil {
				return failed(args[0], err)
			}
			inputs := args[1:]
			outs := make([][]byte, len(inputs))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Workers)
			for i, path := range inputs {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, err := a.decodeOne(rd, path)
					outs[i] = out
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return a.emit(outs)
		},
	}
}

func (a *app) decodeOne(rd *propbin.RecordDescriptor, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	res, err := codec.DecodeAssetWith(a.reg, rd, data, a.cfg.DecodeOpt(a.log))
	if err != nil {
		return nil, failed(path, err)
	}
	a.log.Debug("decoded",
		zap.String("input", path),
		zap.String("record", rd.Name),
		zap.Uint32("pathHash", res.PathHash),
		zap.Int("unknown", res.Unknown))
	for _, u := range res.UnknownFields {
		a.log.Info("unknown field",
			zap.String("input", path),
			zap.String("path", u.Path),
			zap.String("hash", fmt.Sprintf("0x%08x", u.Hash)))
	}
	out, err := codec.MarshalJSON(a.reg, res.Value, a.cfg.JSONOpt())
	return out, failed(path, err)
}

func (a *app) entriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries <input-path>",
		Short: "Decode every entry of a container, resolving types by class hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			ents, err := codec.DecodeFile(a.reg, data, a.cfg.DecodeOpt(a.log))
			if err != nil {
				return failed(args[0], err)
			}
			outs := make([][]byte, 0, len(ents))
			for _, ent := range ents {
				body, err := codec.MarshalJSON(a.reg, ent.Value)
				if err != nil {
					return failed(args[0], err)
				}
				line := fmt.Appendf(nil, `{"class":"%s","pathHash":%d,"value":%s}`, ent.Record.Name, ent.PathHash, body)
				if a.cfg.Output.Pretty {
					var buf bytes.Buffer
					if err := json.Indent(&buf, line, "", "  "); err != nil {
						return err
					}
					line = buf.Bytes()
				}
				outs = append(outs, line)
			}
			return a.emit(outs)
		},
	}
}

// emit writes each document followed by a newline.
func (a *app) emit(docs [][]byte) error {
	for _, d := range docs {
		if _, err := a.stdout.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
