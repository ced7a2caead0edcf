package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/api"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [type...]",
		Short: "Print the rules of types, including inherited ones",
		Long:  "Print the rules of the named types as JSON. Without arguments every type in the schema is printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = a.schema.Names()
			}

			out := make([]api.RulesResponse, 0, len(names))
			for _, name := range names {
				if err := a.knownType(name); err != nil {
					return err
				}
				out = append(out, api.RulesResponse{
					Type:    name,
					Extends: a.registry.Ancestors(name),
					Rules:   a.validator.GetValidationRules(name),
				})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
