// Package i18n loads message catalogs and translates validation messages.
//
// A Translator reads catalogs through a TranslationAdapter. Catalogs are
// nested maps keyed by language; keys are looked up with dot notation, so
// "validation.min_length" resolves to
//
//	en:
//	  validation:
//	    min_length: "%{field} must be at least %{min} characters"
//
// Placeholders use the %{name} form and are filled from key, value pairs:
//
//	tr.T("en", "validation.min_length", "field", "name", "min", "2")
//
// Bundled returns the catalogs shipped with the package. Merge layers a
// user supplied file on top of them:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.Merge(
//		i18n.Bundled(),
//		i18n.NewFileAdapter(i18n.NewParserForFile(path), path),
//	))
//
// Middleware negotiates the request language from the lang query parameter
// and the Accept-Language header and stores it in the request context,
// where GetLocale reads it back.
package i18n
