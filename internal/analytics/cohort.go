package analytics

import "partnerdash-be/internal/models"

// EngagementIndex groups engagement records of selected campaigns by recipient.
type EngagementIndex map[string][]models.EngagementRecord

// IndexEngagement keeps only records whose campaign is in campaigns.
func IndexEngagement(records []models.EngagementRecord, campaigns []string) EngagementIndex {
	wanted := setOf(campaigns...)
	ix := EngagementIndex{}
	for _, r := range records {
		if !has(wanted, r.CampaignName) {
			continue
		}
		email := NormalizeEmail(r.RecipientEmail)
		ix[email] = append(ix[email], r)
	}
	return ix
}

func (ix EngagementIndex) Matches(email string) []models.EngagementRecord {
	return ix[NormalizeEmail(email)]
}

// NotSent reports whether email has no matching record or none was ever sent.
func (ix EngagementIndex) NotSent(email string) bool {
	for _, r := range ix.Matches(email) {
		if r.Sent > 0 {
			return false
		}
	}
	return true
}

// JoinCohort emits one row per (member, matching record); members without a
// match get a single row with empty engagement. A nil index yields all-empty rows.
func JoinCohort(members []models.CohortMember, ix EngagementIndex) []models.CohortRow {
	rows := make([]models.CohortRow, 0, len(members))
	for _, m := range members {
		matches := ix.Matches(m.Email)
		if len(matches) == 0 {
			rows = append(rows, models.CohortRow{CohortMember: m})
			continue
		}
		for _, r := range matches {
			rows = append(rows, models.CohortRow{
				CohortMember: m,
				CampaignName: &r.CampaignName,
				Sent:         &r.Sent,
				Opened:       &r.Opened,
				Clicked:      &r.Clicked,
				Replied:      &r.Replied,
				LastSentAt:   r.LastSentAt,
			})
		}
	}
	return rows
}
