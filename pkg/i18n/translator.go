package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Translator resolves message keys against catalogs loaded from an adapter.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	adapter        TranslationAdapter
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads the adapter's catalogs and returns a Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the catalogs from the adapter again and swaps them in.
// On error the previous catalogs stay active.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, catalog := range translations {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if catalog == nil {
			return fmt.Errorf("%w: nil catalog for language %s", ErrInvalidCatalog, lang)
		}
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	if len(langs) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
		return nil
	}
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the languages that have a catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Match picks the best supported language for an Accept-Language header,
// falling back to the default language.
func (t *Translator) Match(acceptLanguage string) string {
	return ParseAcceptLanguage(acceptLanguage, t.SupportedLanguages(), t.defaultLang)
}

// HasTranslation reports whether lang has a string for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := lookup(t.translations[lang], key)
	if !ok {
		return false
	}
	_, isString := v.(string)
	return isString
}

// T translates key into lang. Arguments are key, value pairs that fill
// %{key} placeholders; unknown placeholders are left as they are.
//
//	// "validation.range": "%{field} must be between %{min} and %{max}"
//	tr.T("en", "validation.range", "field", "age", "min", "18", "max", "120")
//	// age must be between 18 and 120
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	catalog, supported := t.translations[lang]
	v, found := lookup(catalog, key)
	t.mu.RUnlock()

	if s, ok := v.(string); found && ok {
		return substitute(s, args)
	}

	if t.missingLogMode {
		msg := "translation not found"
		if !supported {
			msg = "language not supported"
		}
		t.logger.Warn(msg, logger.Lang(lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Tc translates key into the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// lookup walks a nested catalog along a dot separated key.
func lookup(catalog map[string]any, key string) (any, bool) {
	if catalog == nil {
		return nil, false
	}
	current := catalog
	parts := strings.Split(key, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if current, ok = asStringMap(v); !ok {
			return nil, false
		}
	}
	return nil, false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
