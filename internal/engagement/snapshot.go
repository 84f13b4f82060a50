package engagement

import (
	"math"
	"sort"
	"strings"

	"partnerdash-be/internal/mixmax"
	"partnerdash-be/internal/models"
)

type recordKey struct {
	email    string
	campaign string
}

// accumulator merges recipient pages into one record per (recipient, campaign).
type accumulator struct {
	records map[recordKey]*models.EngagementRecord
}

func newAccumulator() *accumulator {
	return &accumulator{records: make(map[recordKey]*models.EngagementRecord)}
}

func (a *accumulator) add(campaign string, r mixmax.Recipient) {
	email := strings.ToLower(strings.TrimSpace(r.To.Email))
	if email == "" {
		return
	}

	key := recordKey{email: email, campaign: campaign}
	rec, ok := a.records[key]
	if !ok {
		rec = &models.EngagementRecord{RecipientEmail: email, RecipientName: r.To.Name, CampaignName: campaign}
		a.records[key] = rec
	}

	for _, stage := range r.Stages {
		if !stage.WasSent() {
			continue
		}
		rec.Sent++
		rec.Opened += stage.Opens
		rec.Clicked += stage.Clicks
		rec.Replied += stage.Replied
		rec.Bounced += stage.Bounced
		if t, ok := stage.SentTime(); ok && (rec.LastSentAt == nil || t.After(*rec.LastSentAt)) {
			rec.LastSentAt = &t
		}
	}
}

func (a *accumulator) snapshot() models.EngagementSnapshot {
	recipients := make([]models.EngagementRecord, 0, len(a.records))
	var totals models.EngagementTotals
	for _, rec := range a.records {
		recipients = append(recipients, *rec)
		totals.Sent += rec.Sent
		totals.Opened += rec.Opened
		totals.Clicked += rec.Clicked
		totals.Replied += rec.Replied
		totals.Bounced += rec.Bounced
	}
	totals.OpenRate = percent(totals.Opened, totals.Sent)
	totals.ClickRate = percent(totals.Clicked, totals.Sent)
	totals.ReplyRate = percent(totals.Replied, totals.Sent)

	sort.Slice(recipients, func(i, j int) bool {
		if recipients[i].Sent != recipients[j].Sent {
			return recipients[i].Sent > recipients[j].Sent
		}
		if recipients[i].RecipientEmail != recipients[j].RecipientEmail {
			return recipients[i].RecipientEmail < recipients[j].RecipientEmail
		}
		return recipients[i].CampaignName < recipients[j].CampaignName
	})

	return models.EngagementSnapshot{Totals: totals, Recipients: recipients}
}

// percent rounds part/sent to one decimal place; zero sent yields zero.
func percent(part, sent int) float64 {
	if sent == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(sent)*1000) / 10
}
