package triage

import "github.com/arogyapath/portal/internal/pkg/metrics"

func recordResponse(severity Severity) {
	label := string(severity)
	if label == "" {
		label = "none"
	}
	metrics.TriageResponses.WithLabelValues(label).Inc()
}
