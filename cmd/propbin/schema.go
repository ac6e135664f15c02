package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/propbin/internal/ir"
	"github.com/reoring/propbin/jsonschema"
)

func (a *app) schemaCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schema [name]",
		Short: "Dump record and variant descriptors",
		Long: `Dump the descriptor of one record or variant (with everything it reaches),
or of the whole registry when no name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []byte
			var err error
			switch format {
			case "jsonschema":
				out, err = a.jsonSchema(args)
			case "yaml", "json":
				var doc *ir.Document
				if doc, err = a.irDocument(args); err != nil {
					return err
				}
				if format == "yaml" {
					out, err = doc.YAML()
				} else {
					out, err = doc.JSON()
				}
			default:
				return fmt.Errorf("unknown format %q (want yaml, json or jsonschema)", format)
			}
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(out)
			if err == nil && len(out) > 0 && out[len(out)-1] != '\n' {
				_, err = a.stdout.Write([]byte{'\n'})
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json or jsonschema")
	return cmd
}

func (a *app) irDocument(args []string) (*ir.Document, error) {
	if len(args) == 0 {
		return ir.FromRegistry(a.reg), nil
	}
	if rd, err := a.reg.Record(args[0]); err == nil {
		return ir.FromRecord(rd), nil
	}
	v, err := a.reg.Variant(args[0])
	if err != nil {
		return nil, fmt.Errorf("%q is neither a record nor a variant", args[0])
	}
	return ir.FromVariant(v), nil
}

func (a *app) jsonSchema(args []string) ([]byte, error) {
	var doc *jsonschema.Schema
	if len(args) == 0 {
		doc = jsonschema.ForRegistry(a.reg)
	} else {
		var err error
		if doc, err = jsonschema.ForName(a.reg, args[0]); err != nil {
			return nil, err
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}
