// Package engine evaluates prioritized rules against a fact set and
// selects a single air-conditioner action.
//
// The core is three pure functions mirroring the evaluation layers:
//
//  1. EvaluateCondition - tests one fact against one operator and literal
//  2. RuleMatches - ANDs a rule's conditions
//  3. Run - collects matching rules, ranks them by priority (stable on
//     ties, earlier rule wins), and returns the winner's action plus the
//     full ranked matched set for explainability
//
// Each call is a stateless transformation of immutable inputs: no
// cross-call memory, no side effects. A rule set may therefore be
// shared read-only across concurrent callers without locking.
//
// When zero rules fire, Run returns FallbackAction() and an empty
// matched list. That is the defined fallback policy, not an error. Any
// per-condition failure (missing fact, type mismatch) aborts the whole
// evaluation instead: a partially evaluated rule set could mask a
// misconfiguration, so a single malformed condition invalidates the
// decision rather than silently excluding one rule.
//
// Evaluator wraps the pure core with a swappable rule set, structured
// logging, and metrics for service use.
package engine
