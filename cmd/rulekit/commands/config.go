package commands

// Config is read from the environment. Command-line flags win over it.
type Config struct {
	Schema      string `env:"RULEKIT_SCHEMA"`
	Messages    string `env:"RULEKIT_MESSAGES"`
	Lang        string `env:"RULEKIT_LANG" envDefault:"en"`
	StrictKinds bool   `env:"RULEKIT_STRICT_KINDS"`
	FailFast    bool   `env:"RULEKIT_FAIL_FAST"`
	LogFormat   string `env:"RULEKIT_LOG_FORMAT" envDefault:"text"`
	Env         string `env:"RULEKIT_ENV" envDefault:"development"`
}
