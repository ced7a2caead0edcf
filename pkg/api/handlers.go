package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/schema"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RulesResponse is the body of GET /rules/{type}.
type RulesResponse struct {
	Type    string                       `json:"type"`
	Extends []string                     `json:"extends,omitempty"`
	Rules   map[string]validator.RuleSet `json:"rules"`
}

func (h *handler) getRules(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "type")
	reg := h.validator.Registry()

	rules := reg.Rules(name)
	if len(rules) == 0 {
		writeError(w, http.StatusNotFound, unknownType(name))
		return
	}
	writeJSON(w, http.StatusOK, RulesResponse{
		Type:    name,
		Extends: reg.Ancestors(name),
		Rules:   rules,
	})
}

func (h *handler) postValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "type")

	props := h.validator.Registry().Properties(name)
	if len(props) == 0 {
		writeError(w, http.StatusNotFound, unknownType(name))
		return
	}

	doc, err := schema.DecodeDocument(http.MaxBytesReader(w, r.Body, h.maxBodySize), name, props)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.logger.DebugContext(ctx, "rejected document", logger.Type(name), logger.Error(err))
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	res := h.validate(ctx, doc)
	if h.translator != nil {
		res.Errors = res.Errors.Translate(h.translator, i18n.GetLocale(ctx))
	}

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}

func unknownType(name string) string {
	return fmt.Sprintf("no rules registered for type %q", name)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
