package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func TestMiddleware(t *testing.T) {
	tr, err := i18n.NewTranslator(context.Background(), i18n.Bundled())
	require.NoError(t, err)

	var got string
	handler := i18n.Middleware(i18n.LangExtractorFor(tr), "en")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}),
	)

	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{"accept language", "/", "de-AT,de;q=0.9", "de"},
		{"query parameter wins", "/?lang=es", "fr", "es"},
		{"unsupported query falls through", "/?lang=xx", "fr", "fr"},
		{"nothing to negotiate", "/", "", "en"},
		{"unsupported header", "/", "ja", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get("Content-Language"))
		})
	}

	t.Run("nil extractor and empty fallback", func(t *testing.T) {
		h := i18n.Middleware(nil, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, i18n.DefaultLanguage, got)
	})
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, "en", i18n.GetLocale(context.Background()))
	assert.Equal(t, "fr", i18n.GetLocale(i18n.SetLocale(context.Background(), "fr")))
	assert.Equal(t, "en", i18n.GetLocale(i18n.SetLocale(context.Background(), "")))
}
