package analytics

import (
	"sort"
	"time"

	"partnerdash-be/internal/models"
)

// Input is everything one aggregation pass reads. Leads are raw: supersession
// by applications is applied inside Compute.
type Input struct {
	Leads          []models.Lead
	Applications   []models.Application // drops included
	Links          []models.CounselorLink
	CounselorNames map[string]string // counselor id -> display name
	Period         Period
}

type Aggregator struct {
	now func() time.Time
}

func NewAggregator(now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{now: now}
}

// pass holds the derived state shared by every computation of one Compute call.
type pass struct {
	now    time.Time
	period Period
	index  *EmailIndex
	leads  []models.Lead // raw
	unique []models.Lead
	apps   []models.Application
	live   []models.Application // non-drop
}

// Compute derives the complete dashboard. It does not modify in.
func (a *Aggregator) Compute(in Input) models.AnalyticsData {
	period := ParsePeriod(string(in.Period))
	ix := NewEmailIndex(in.Leads, in.Applications)

	p := &pass{
		now:    a.now(),
		period: period,
		index:  ix,
		leads:  in.Leads,
		unique: UniqueLeads(in.Leads, ix),
		apps:   in.Applications,
	}
	for _, app := range in.Applications {
		if !app.Dropped {
			p.live = append(p.live, app)
		}
	}

	current, previous := p.stageCounts()
	top, activity := p.counselorRollups(in.Links, in.CounselorNames)

	return models.AnalyticsData{
		StageCounts:          current,
		StageCountsPrevious:  previous,
		SubStageCounts:       p.subStageCounts(),
		LeadsOverTime:        p.leadsOverTime(),
		StageEntriesOverTime: p.stageEntriesOverTime(),
		InterviewsOverTime:   p.interviewsOverTime(),
		ConversionFunnel:     p.conversionFunnel(),
		DropOffs:             p.dropOffs(),
		Velocity:             p.velocity(),
		TopCounselors:        top,
		CounselorActivity:    activity,
		Period:               string(period),
		GeneratedAt:          p.now,
	}
}

func (p *pass) stageCounts() (current, previous models.StageCounts) {
	cur := p.period.Current(p.now)
	prev, hasPrev := p.period.Previous(p.now)

	count := func(t time.Time, stage models.FunnelStage) {
		if cur.Contains(t) {
			current.Add(stage)
		}
		if hasPrev && prev.Contains(t) {
			previous.Add(stage)
		}
	}
	for _, l := range p.unique {
		count(l.CreatedDate, models.StageLead)
	}
	for _, app := range p.live {
		count(app.CreatedDate, Classify(app.FollowUpStatus))
	}
	return current, previous
}

func (p *pass) subStageCounts() map[string]int {
	counts := make(map[string]int, len(SubStages))
	for _, s := range SubStages {
		counts[s] = 0
	}
	for _, app := range p.live {
		status := app.FollowUpStatus
		if status == "" {
			status = "SWA1"
		}
		if _, tracked := counts[status]; tracked {
			counts[status]++
		}
	}
	return counts
}

func (p *pass) leadsOverTime() []models.LeadsOverTimePoint {
	cur := p.period.Current(p.now)
	buckets := map[string]*models.LeadsOverTimePoint{}
	bucket := func(t time.Time) *models.LeadsOverTimePoint {
		key := p.period.BucketKey(t)
		b, ok := buckets[key]
		if !ok {
			b = &models.LeadsOverTimePoint{Date: key}
			buckets[key] = b
		}
		return b
	}

	for _, l := range p.unique {
		if cur.Contains(l.CreatedDate) {
			bucket(l.CreatedDate).Leads++
		}
	}
	for _, app := range p.apps {
		if cur.Contains(app.CreatedDate) {
			bucket(app.CreatedDate).Applications++
		}
	}

	out := make([]models.LeadsOverTimePoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (p *pass) stageEntriesOverTime() []models.StageEntriesPoint {
	cur := p.period.Current(p.now)
	buckets := map[string]*models.StageEntriesPoint{}
	add := func(t time.Time, stage models.FunnelStage) {
		if !cur.Contains(t) {
			return
		}
		key := p.period.BucketKey(t)
		b, ok := buckets[key]
		if !ok {
			b = &models.StageEntriesPoint{Date: key}
			buckets[key] = b
		}
		b.Add(stage)
	}

	for _, l := range p.unique {
		add(l.CreatedDate, models.StageLead)
	}
	for _, app := range p.live {
		add(app.CreatedDate, Classify(app.FollowUpStatus))
	}

	out := make([]models.StageEntriesPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (p *pass) interviewsOverTime() []models.CountPoint {
	cur := p.period.Current(p.now)
	counts := map[string]int{}
	for _, app := range p.apps {
		if app.InterviewDate == nil || !cur.Contains(*app.InterviewDate) {
			continue
		}
		counts[p.period.BucketKey(*app.InterviewDate)]++
	}

	out := make([]models.CountPoint, 0, len(counts))
	for date, n := range counts {
		out = append(out, models.CountPoint{Date: date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
