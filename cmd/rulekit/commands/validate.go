package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/schema"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	var typeName, output string

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Validate a JSON document",
		Long: `Validate a JSON document as an instance of --type. The document is read
from the named file, or from stdin when the argument is "-" or missing.
The exit status is 1 when the document breaks a rule.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			if err := a.knownType(typeName); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			doc, err := schema.DecodeDocument(in, typeName, a.registry.Properties(typeName))
			if err != nil {
				return err
			}

			validate := validator.Decorate(a.validator.Func(),
				validator.Logging(a.logger),
				validator.Timing(a.logger, nil),
			)
			res := validate(cmd.Context(), doc)

			if err := writeResult(cmd.OutOrStdout(), output, res); err != nil {
				return err
			}
			if !res.Valid {
				return ErrInvalid
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "type to validate the document as")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json, text")
	return cmd
}

func writeResult(w io.Writer, output string, res validator.Result) error {
	switch output {
	case "json":
		return writeJSON(w, res)
	case "text":
		if res.Valid {
			_, err := fmt.Fprintln(w, "valid")
			return err
		}
		for _, e := range res.Errors {
			if _, err := fmt.Fprintf(w, "%s: %s\n", e.Property, e.Message); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be json or text", output)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
