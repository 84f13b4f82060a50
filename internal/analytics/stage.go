package analytics

import "partnerdash-be/internal/models"

var (
	applicationStatuses = setOf("", "SWA1", "SWA2", "SWA3", "Call Shortlisting")
	interviewStatuses   = setOf("Interview Completed", "AWA1", "AWA2", "AWA3", "Call Payment")
	clientStatuses      = setOf("Client")
)

// SubStages are the follow-up statuses counted individually, in pipeline order.
var SubStages = []string{
	"SWA1", "SWA2", "SWA3", "Call Shortlisting",
	"Interview Completed", "AWA1", "AWA2", "AWA3", "Call Payment",
}

// ShortlistingStatuses and AcceptanceStatuses group the sub-stages targeted by
// the shortlisting and acceptance email campaigns.
var (
	ShortlistingStatuses = []string{"SWA1", "SWA2", "SWA3", "Call Shortlisting"}
	AcceptanceStatuses   = []string{"AWA1", "AWA2", "AWA3", "Call Payment"}
)

// Classify maps an application's follow-up status to its funnel stage. It never
// returns StageLead: applications start at StageApplication.
func Classify(status string) models.FunnelStage {
	switch {
	case has(applicationStatuses, status):
		return models.StageApplication
	case has(interviewStatuses, status):
		return models.StageInterview
	case has(clientStatuses, status):
		return models.StageClient
	default:
		// unrecognised statuses stay in Application so the mapping is total
		return models.StageApplication
	}
}

// ReachedInterview reports whether status is at the Interview stage or beyond.
func ReachedInterview(status string) bool {
	return has(interviewStatuses, status) || has(clientStatuses, status)
}

// IsClient reports whether status is the terminal Client stage.
func IsClient(status string) bool {
	return has(clientStatuses, status)
}

func setOf(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func has(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
