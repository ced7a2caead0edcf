// Package commands implements the rulekit CLI.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/api"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/environment"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/schema"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const version = "0.1.0"

// app carries state shared by the subcommands of one invocation.
type app struct {
	cfg       Config
	verbosity int
	logger    *slog.Logger

	schema     *schema.Schema
	registry   *validator.Registry
	translator *i18n.Translator
	validator  *validator.Validator
}

// NewRootCmd returns a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "rulekit",
		Short: "Validate JSON documents against declarative rules",
		Long: `rulekit validates JSON documents against rules declared in a YAML or
JSON schema. Types may extend other types and inherit their rules.

Settings come from RULEKIT_* environment variables (and a .env file);
flags override them.`,
		Example: `  # Validate a document
  rulekit validate --schema rules.yaml --type user user.json

  # Read the document from stdin and report in French
  cat user.json | rulekit validate -s rules.yaml -t user --lang fr -

  # Show the rules of a type
  rulekit rules -s rules.yaml user

  # Serve the HTTP API
  rulekit serve -s rules.yaml --addr :8080`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetVersionTemplate("rulekit version {{.Version}}\n")

	f := cmd.PersistentFlags()
	f.StringP("schema", "s", "", "rule schema file (.yaml, .yml or .json)")
	f.String("messages", "", "message catalog merged over the bundled one")
	f.String("lang", "", "language of validation messages")
	f.Bool("strict", false, "fail rules of unknown kinds instead of skipping them")
	f.Bool("fail-fast", false, "stop at the first failing rule of each property")
	f.String("log-format", "", "log format: text, json")
	f.CountVarP(&a.verbosity, "verbose", "v", "increase verbosity (-v, -vv)")

	cmd.AddCommand(newValidateCmd(a), newRulesCmd(a), newServeCmd(a))
	return cmd
}

// setup reads the configuration, builds the logger and stores the
// environment in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("schema") {
		a.cfg.Schema, _ = f.GetString("schema")
	}
	if f.Changed("messages") {
		a.cfg.Messages, _ = f.GetString("messages")
	}
	if f.Changed("lang") {
		a.cfg.Lang, _ = f.GetString("lang")
	}
	if f.Changed("strict") {
		a.cfg.StrictKinds, _ = f.GetBool("strict")
	}
	if f.Changed("fail-fast") {
		a.cfg.FailFast, _ = f.GetBool("fail-fast")
	}
	if f.Changed("log-format") {
		a.cfg.LogFormat, _ = f.GetString("log-format")
	}

	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(format),
		logger.WithLevel(logger.LevelFromVerbosity(a.verbosity)),
		logger.WithAttr(slog.String("service", "rulekit")),
		logger.WithContextExtractors(
			environment.LoggerExtractor(),
			api.RequestIDExtractor(),
		),
	)
	cmd.SetContext(environment.WithContext(cmd.Context(), environment.Parse(a.cfg.Env)))
	return nil
}

// load reads the schema and message catalogs and builds the validator.
func (a *app) load(cmd *cobra.Command) error {
	if a.validator != nil {
		return nil
	}
	if a.cfg.Schema == "" {
		return ErrNoSchema
	}
	ctx := cmd.Context()

	s, err := schema.LoadFile(ctx, a.cfg.Schema)
	if err != nil {
		return err
	}
	reg := validator.NewRegistry()
	if err := s.Apply(reg); err != nil {
		return err
	}

	adapter := i18n.Bundled()
	if a.cfg.Messages != "" {
		adapter = i18n.Merge(adapter, i18n.NewFileAdapter(nil, a.cfg.Messages))
	}
	tr, err := i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(a.cfg.Lang),
		i18n.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	a.schema = s
	a.registry = reg
	a.translator = tr
	a.validator = validator.New(
		validator.WithRegistry(reg),
		validator.WithLogger(a.logger),
		validator.WithStrictKinds(a.cfg.StrictKinds),
		validator.WithFailFast(a.cfg.FailFast),
		validator.WithTranslator(tr, a.cfg.Lang),
	)
	a.logger.DebugContext(ctx, "schema loaded",
		logger.Path(a.cfg.Schema),
		logger.Count("types", len(s.Types)),
	)
	return nil
}

// knownType fails for types that have no rules in the loaded schema.
func (a *app) knownType(name string) error {
	if name == "" {
		return ErrNoType
	}
	if len(a.registry.Properties(name)) == 0 {
		return fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	return nil
}
