package models

import "time"

// CohortMember - a person targeted by a campaign, as read from the pipeline
type CohortMember struct {
	RecordID    string     `json:"recordId"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	EmailSentAt *time.Time `json:"emailSentAt,omitempty"`
}

// CohortRow - a cohort member joined with one matching engagement record.
// Engagement fields are nil when nothing matched or the feed was unavailable.
type CohortRow struct {
	CohortMember
	CampaignName *string    `json:"sequenceName"`
	Sent         *int       `json:"sent"`
	Opened       *int       `json:"opened"`
	Clicked      *int       `json:"clicked"`
	Replied      *int       `json:"replied"`
	LastSentAt   *time.Time `json:"lastSentAt"`
}

// CohortReport - one campaign cohort with its engagement
type CohortReport struct {
	Cohort             string      `json:"cohort"`
	Title              string      `json:"title"`
	Days               int         `json:"days"`
	Rows               []CohortRow `json:"rows"`
	EngagementCachedAt *time.Time  `json:"engagementCachedAt"`
	EngagementStale    bool        `json:"engagementStale,omitempty"`
	GeneratedAt        time.Time   `json:"generatedAt"`
}

// DigestSection - cohort members who never received their campaign email
type DigestSection struct {
	Cohort  string         `json:"cohort"`
	Title   string         `json:"title"`
	Total   int            `json:"total"`
	NotSent []CohortMember `json:"notSent"`
}

// DailyCheckResult - outcome of one daily digest run
type DailyCheckResult struct {
	OK           bool            `json:"ok"`
	SentTo       string          `json:"sentTo"`
	TotalNotSent int             `json:"totalNotSent"`
	Sections     []DigestSection `json:"sections"`
	RanAt        time.Time       `json:"ranAt"`
}
