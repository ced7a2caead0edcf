package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor returns the language for a request, or "" when unknown.
type LangExtractor func(r *http.Request) string

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// LangExtractorFor negotiates the request language against the translator's
// catalogs. The lang query parameter wins over Accept-Language; values that
// have no catalog are ignored.
func LangExtractorFor(t *Translator) LangExtractor {
	return func(r *http.Request) string {
		supported := t.SupportedLanguages()

		if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" && len(q) <= maxLangCodeLength {
			if lang := ParseAcceptLanguage(q, supported, ""); lang != "" {
				return lang
			}
		}
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported, "")
	}
}

// Middleware stores the extracted language in the request context.
// It falls back to fallback, then to DefaultLanguage.
func Middleware(extr LangExtractor, fallback string) func(http.Handler) http.Handler {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = fallback
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
