package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the negotiated language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(localeContextKey{}).(string); ok && locale != "" {
		return locale
	}
	return DefaultLanguage
}
