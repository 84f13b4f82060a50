package analytics

import (
	"math"
	"time"

	"partnerdash-be/internal/models"
)

const (
	// AbandonedLeadAfter is how long a lead may sit without applying before it
	// counts as a drop-off.
	AbandonedLeadAfter = 30 * 24 * time.Hour

	// MaxPlausibleTransition bounds stage transitions; longer gaps are data errors.
	MaxPlausibleTransition = 365 * 24 * time.Hour
)

func (p *pass) conversionFunnel() []models.FunnelStep {
	var apps, interviews, clients int
	for _, app := range p.live {
		apps++
		if ReachedInterview(app.FollowUpStatus) {
			interviews++
		}
		if IsClient(app.FollowUpStatus) {
			clients++
		}
	}
	leads := len(p.unique) + apps

	return []models.FunnelStep{
		{Stage: models.StageLead, Count: leads, Rate: 100},
		{Stage: models.StageApplication, Count: apps, Rate: ratePercent(apps, leads)},
		{Stage: models.StageInterview, Count: interviews, Rate: ratePercent(interviews, apps)},
		{Stage: models.StageClient, Count: clients, Rate: ratePercent(clients, interviews)},
	}
}

// ratePercent is round(100*n/d), or 0 when d is 0.
func ratePercent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}

func (p *pass) dropOffs() []models.DropOff {
	var counts models.StageCounts
	for _, app := range p.apps {
		if !app.Dropped {
			continue
		}
		if app.InterviewDate != nil {
			counts.Interview++
		} else {
			counts.Application++
		}
	}

	cutoff := p.now.Add(-AbandonedLeadAfter)
	for _, l := range p.unique {
		if l.CreatedDate.Before(cutoff) {
			counts.Lead++
		}
	}

	var out []models.DropOff
	for _, stage := range []models.FunnelStage{models.StageLead, models.StageApplication, models.StageInterview} {
		if n := counts.Get(stage); n > 0 {
			out = append(out, models.DropOff{Stage: stage, Count: n})
		}
	}
	return out
}

func (p *pass) velocity() []models.VelocityStat {
	var leadToApp, appToInterview, interviewToClient []float64
	for _, app := range p.live {
		if created, ok := p.index.LeadCreated(app.Email); ok {
			leadToApp = appendPlausible(leadToApp, app.CreatedDate.Sub(created))
		}
		if app.InterviewDate == nil {
			continue
		}
		appToInterview = appendPlausible(appToInterview, app.InterviewDate.Sub(app.CreatedDate))
		if IsClient(app.FollowUpStatus) {
			interviewToClient = appendPlausible(interviewToClient, app.LastModified.Sub(*app.InterviewDate))
		}
	}

	return []models.VelocityStat{
		{Label: "Lead → Application", AvgDays: averageDays(leadToApp)},
		{Label: "Application → Interview", AvgDays: averageDays(appToInterview)},
		{Label: "Interview → Client", AvgDays: averageDays(interviewToClient)},
	}
}

// appendPlausible keeps non-negative deltas shorter than MaxPlausibleTransition, in days.
func appendPlausible(samples []float64, delta time.Duration) []float64 {
	if delta < 0 || delta >= MaxPlausibleTransition {
		return samples
	}
	return append(samples, delta.Hours()/24)
}

func averageDays(samples []float64) int {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return int(math.Round(sum / float64(len(samples))))
}
