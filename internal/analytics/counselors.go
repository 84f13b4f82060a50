package analytics

import (
	"sort"
	"time"

	"partnerdash-be/internal/models"
)

const (
	// ActiveCounselorWithin is how recent a counselor's last referral must be.
	ActiveCounselorWithin = 60 * 24 * time.Hour

	// TopCounselorLimit caps the leaderboard.
	TopCounselorLimit = 10
)

type counselorStats struct {
	counts models.StageCounts
	latest time.Time
}

func (p *pass) counselorRollups(links []models.CounselorLink, names map[string]string) ([]models.CounselorRollup, []models.CounselorActivity) {
	// a linked lead without an email still counts; only same-email applications supersede it
	leadByID := make(map[string]models.Lead, len(p.leads))
	for _, l := range p.leads {
		if NormalizeEmail(l.Email) != "" && p.index.HasApplication(l.Email) {
			continue
		}
		leadByID[l.ID] = l
	}
	appByID := make(map[string]models.Application, len(p.live))
	for _, app := range p.live {
		appByID[app.ID] = app
	}

	stats := map[string]*counselorStats{}
	var order []string
	for _, link := range links {
		if link.CounselorID == "" {
			continue
		}
		s, ok := stats[link.CounselorID]
		if !ok {
			s = &counselorStats{}
			stats[link.CounselorID] = s
			order = append(order, link.CounselorID)
		}

		for _, id := range link.DiscoveryCallIDs {
			if l, ok := leadByID[id]; ok {
				s.counts.Lead++
				s.touch(l.CreatedDate)
			}
		}
		for _, id := range link.ApplicationIDs {
			if app, ok := appByID[id]; ok {
				s.counts.Add(Classify(app.FollowUpStatus))
				s.touch(app.CreatedDate)
			}
		}
	}

	activeSince := p.now.Add(-ActiveCounselorWithin)
	var top []models.CounselorRollup
	var activity []models.CounselorActivity
	for _, id := range order {
		s := stats[id]
		total := s.counts.Total()
		if total == 0 {
			continue
		}
		name := names[id]
		if name == "" {
			name = id
		}
		top = append(top, models.CounselorRollup{
			CounselorID: id,
			Name:        name,
			Total:       total,
			StageCounts: s.counts,
		})
		activity = append(activity, models.CounselorActivity{
			CounselorID:      id,
			Name:             name,
			LastReferralDate: s.latest,
			TotalStudents:    total,
			IsActive:         !s.latest.Before(activeSince),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Total != top[j].Total {
			return top[i].Total > top[j].Total
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > TopCounselorLimit {
		top = top[:TopCounselorLimit]
	}

	sort.SliceStable(activity, func(i, j int) bool {
		if !activity[i].LastReferralDate.Equal(activity[j].LastReferralDate) {
			return activity[i].LastReferralDate.After(activity[j].LastReferralDate)
		}
		return activity[i].Name < activity[j].Name
	})

	if top == nil {
		top = []models.CounselorRollup{}
	}
	if activity == nil {
		activity = []models.CounselorActivity{}
	}
	return top, activity
}

func (s *counselorStats) touch(t time.Time) {
	if t.After(s.latest) {
		s.latest = t
	}
}
