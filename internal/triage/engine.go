// Package triage maps free-text health questions to canned guidance
// responses. Emergency phrases always win; everything else is first-match
// over an ordered rule table.
package triage

import "strings"

// Severity tags a response. Most rule responses carry no tag.
type Severity string

const (
	SeverityNone    Severity = ""
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Rule maps a trigger phrase to a canned response. Triggers are matched by
// lower-case substring containment, so declaration order decides between
// overlapping rules.
type Rule struct {
	Trigger  string
	Response string
	Severity Severity
}

// Response is the engine's answer to one message.
type Response struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity,omitempty"`
}

// Engine classifies messages. It is pure and stateless across calls; the
// conversation transcript belongs to the caller.
//
// The rule table is an ordered slice, never a map: match precedence depends
// on declaration order and must stay deterministic.
type Engine struct {
	emergencyPhrases  []string
	emergencyResponse string
	rules             []Rule
	defaultResponse   string
}

// NewEngine creates an engine with the portal's built-in guidance tables.
func NewEngine() *Engine {
	return &Engine{
		emergencyPhrases:  emergencyPhrases,
		emergencyResponse: emergencyResponse,
		rules:             guidanceRules,
		defaultResponse:   defaultResponse,
	}
}

// Respond classifies one message. Every input yields exactly one response:
// the emergency response (tagged warning) if any emergency phrase is
// contained in the input, else the first matching rule's response, else the
// fixed default (tagged info). Callers are expected to short-circuit empty
// input before reaching the engine.
func (e *Engine) Respond(message string) Response {
	normalized := strings.ToLower(message)

	// Emergency phrases preempt the general table, even when a general rule
	// shares a trigger like "chest pain".
	for _, phrase := range e.emergencyPhrases {
		if strings.Contains(normalized, phrase) {
			recordResponse(SeverityWarning)
			return Response{Text: e.emergencyResponse, Severity: SeverityWarning}
		}
	}

	for _, rule := range e.rules {
		if strings.Contains(normalized, rule.Trigger) {
			recordResponse(rule.Severity)
			return Response{Text: rule.Response, Severity: rule.Severity}
		}
	}

	recordResponse(SeverityInfo)
	return Response{Text: e.defaultResponse, Severity: SeverityInfo}
}
