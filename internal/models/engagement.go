package models

import "time"

// EngagementRecord - one recipient's activity within one campaign
type EngagementRecord struct {
	RecipientEmail string     `json:"email" bson:"email"`
	RecipientName  string     `json:"name,omitempty" bson:"name,omitempty"`
	CampaignName   string     `json:"sequenceName" bson:"sequenceName"`
	Sent           int        `json:"sent" bson:"sent"`
	Opened         int        `json:"opened" bson:"opened"`
	Clicked        int        `json:"clicked" bson:"clicked"`
	Replied        int        `json:"replied" bson:"replied"`
	Bounced        int        `json:"bounced" bson:"bounced"`
	LastSentAt     *time.Time `json:"lastSentAt" bson:"lastSentAt"`
}

// EngagementTotals - feed-wide sums and percentage rates
type EngagementTotals struct {
	Sent      int     `json:"sent" bson:"sent"`
	Opened    int     `json:"opened" bson:"opened"`
	Clicked   int     `json:"clicked" bson:"clicked"`
	Replied   int     `json:"replied" bson:"replied"`
	Bounced   int     `json:"bounced" bson:"bounced"`
	OpenRate  float64 `json:"openRate" bson:"openRate"`
	ClickRate float64 `json:"clickRate" bson:"clickRate"`
	ReplyRate float64 `json:"replyRate" bson:"replyRate"`
}

// EngagementSnapshot - aggregated engagement feed contents
type EngagementSnapshot struct {
	Totals     EngagementTotals   `json:"totals" bson:"totals"`
	Recipients []EngagementRecord `json:"recipients" bson:"recipients"`
}

// EngagementCacheEntry - the single persisted cache blob
type EngagementCacheEntry struct {
	FetchedAt time.Time          `json:"fetchedAt" bson:"fetchedAt"`
	Data      EngagementSnapshot `json:"data" bson:"data"`
}

// EngagementResponse - snapshot annotated with cache metadata
type EngagementResponse struct {
	EngagementSnapshot
	CachedAt time.Time `json:"cachedAt"`
	Stale    bool      `json:"stale,omitempty"`
}
