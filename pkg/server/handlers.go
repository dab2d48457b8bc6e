package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"frostline/breeze/pkg/facts"
	"frostline/breeze/pkg/rules"
	"frostline/breeze/pkg/rules/engine"
)

// Error codes returned in the body of non-2xx responses.
const (
	codeInvalidRequest = "invalid_request"
	codeMissingFact    = "missing_fact"
	codeTypeMismatch   = "type_mismatch"
	codeInternal       = "internal_error"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// matchedRule is the per-rule summary included in decision responses.
type matchedRule struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// decisionResponse is the body of a successful evaluation.
type decisionResponse struct {
	Action   rules.Action  `json:"action"`
	Matched  []matchedRule `json:"matched"`
	Fallback bool          `json:"fallback"`
}

// EvaluateHandler decides an action for a posted fact set.
//
// Request body: a JSON object mapping fact names to scalar values,
// e.g. {"temperature": 31, "windows_open": false}.
//
// Responses:
//   - 200 with the decision (including the fallback action when no
//     rule matched)
//   - 400 for a malformed body
//   - 422 when a condition references a missing fact or the comparison
//     is not defined for the operand types
type EvaluateHandler struct {
	Evaluator *engine.Evaluator
}

// NewEvaluateHandler creates the evaluation handler.
func NewEvaluateHandler(evaluator *engine.Evaluator) *EvaluateHandler {
	return &EvaluateHandler{Evaluator: evaluator}
}

// ServeHTTP implements http.Handler.
func (h *EvaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	var set facts.Set
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body: "+err.Error())
		return
	}
	if set == nil {
		set = facts.Set{}
	}

	decision, err := h.Evaluator.Evaluate(set)
	if err != nil {
		var missing *engine.MissingFactError
		var mismatch *engine.TypeMismatchError
		switch {
		case errors.As(err, &missing):
			writeError(w, http.StatusUnprocessableEntity, codeMissingFact, missing.Error())
		case errors.As(err, &mismatch):
			writeError(w, http.StatusUnprocessableEntity, codeTypeMismatch, mismatch.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		}
		return
	}

	matched := make([]matchedRule, 0, len(decision.Matched))
	for _, rule := range decision.Matched {
		matched = append(matched, matchedRule{Name: rule.Name, Priority: rule.Priority})
	}

	writeJSON(w, http.StatusOK, decisionResponse{
		Action:   decision.Action,
		Matched:  matched,
		Fallback: decision.Fallback(),
	})
}

// rulesResponse is the body of the rule set introspection endpoint.
type rulesResponse struct {
	Rules []*rules.Rule `json:"rules"`
	Count int           `json:"count"`
}

// RulesHandler returns the currently loaded rule set.
type RulesHandler struct {
	Evaluator *engine.Evaluator
}

// NewRulesHandler creates the rule set introspection handler.
func NewRulesHandler(evaluator *engine.Evaluator) *RulesHandler {
	return &RulesHandler{Evaluator: evaluator}
}

// ServeHTTP implements http.Handler.
func (h *RulesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	ruleSet := h.Evaluator.Rules()
	writeJSON(w, http.StatusOK, rulesResponse{Rules: ruleSet, Count: len(ruleSet)})
}

// HealthHandler handles health check requests for liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler for liveness checks.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeInvalidRequest, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
