package session

import "github.com/arogyapath/portal/internal/pkg/metrics"

func recordOperation(operation, result string) {
	metrics.SessionOperations.WithLabelValues(operation, result).Inc()
}
