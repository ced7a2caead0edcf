package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps how much of the header is parsed.
const maxAcceptLanguageLength = 4096

type weightedLang struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader returns the listed languages, lower-cased and
// sorted by descending quality. Entries with q=0 are dropped.
func parseAcceptLanguageHeader(header string) []weightedLang {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var langs []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
				q = f
			}
		}
		if q == 0 {
			continue
		}
		langs = append(langs, weightedLang{lang: tag, q: q})
	}

	slices.SortStableFunc(langs, func(a, b weightedLang) int {
		return cmp.Compare(b.q, a.q)
	})
	return langs
}

// ParseAcceptLanguage returns the supported language that best matches the
// header. Exact tags are tried first in preference order, then base
// languages ("fr-CA" matches "fr"). Without a match it returns defaultLang.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	langs := parseAcceptLanguageHeader(header)
	for _, l := range langs {
		if slices.Contains(supported, l.lang) {
			return l.lang
		}
	}
	for _, l := range langs {
		if base, _, ok := strings.Cut(l.lang, "-"); ok && slices.Contains(supported, base) {
			return base
		}
	}
	return defaultLang
}
