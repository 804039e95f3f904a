package app

import (
	"strings"

	"delta-detect/internal/domain/entity"
)

// maxAlerts bounds the frame alert to its first entries; later
// qualifying alerts are dropped to keep the message readable.
const maxAlerts = 3

// criticalKeywords and highKeywords drive the final per-object
// priority. Labels are matched case-insensitively by substring.
var (
	criticalKeywords = []string{"traffic light", "stop sign", "fire", "emergency vehicle"}
	highKeywords     = []string{"brake light", "turn signal", "yield sign", "warning sign", "cone"}
)

// FinalPriority combines an object's label with its color verdict into
// the final alert priority.
func FinalPriority(label string, isProblematic bool) entity.Priority {
	l := strings.ToLower(label)
	switch {
	case matchesAny(l, criticalKeywords):
		if isProblematic {
			return entity.PriorityCritical
		}
		return entity.PriorityHigh
	case matchesAny(l, highKeywords):
		if isProblematic {
			return entity.PriorityHigh
		}
		return entity.PriorityNormal
	default:
		if isProblematic {
			return entity.PriorityNormal
		}
		return entity.PriorityLow
	}
}

func matchesAny(label string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// buildAlertMessage joins the first alerts into the frame message, or
// returns "" when there is nothing to say.
func buildAlertMessage(alerts []string) string {
	if len(alerts) == 0 {
		return ""
	}
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return strings.Join(alerts, "; ")
}
