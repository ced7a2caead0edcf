package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Translator looks up localized message templates.
// *i18n.Translator satisfies it.
type Translator interface {
	HasTranslation(lang, key string) bool
	T(lang, key string, args ...string) string
}

// Translate returns a copy of the errors with default messages replaced by
// their lang translations. Errors without a translation key, or whose key
// has no translation in lang, keep their message.
func (ve ValidationErrors) Translate(tr Translator, lang string) ValidationErrors {
	if tr == nil || ve == nil {
		return ve
	}

	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.TranslationKey != "" && tr.HasTranslation(lang, err.TranslationKey) {
			err.Message = tr.T(lang, err.TranslationKey, translationArgs(err.TranslationValues)...)
		}
		out[i] = err
	}
	return out
}

// translationArgs flattens values into key, value pairs in key order.
func translationArgs(values map[string]any) []string {
	keys := slices.Sorted(maps.Keys(values))
	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
