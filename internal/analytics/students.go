package analytics

import (
	"sort"

	"partnerdash-be/internal/models"
)

// BuildStudents merges a partner's linked applications and discovery calls into
// one list. Dropped applications are hidden; leads already represented by a
// live application email are skipped. Newest first.
func BuildStudents(apps []models.Application, leads []models.Lead) []models.Student {
	students := make([]models.Student, 0, len(apps)+len(leads))
	seen := make(map[string]struct{}, len(apps))

	for _, app := range apps {
		if app.Dropped {
			continue
		}
		if email := NormalizeEmail(app.Email); email != "" {
			seen[email] = struct{}{}
		}
		students = append(students, models.Student{
			ID:             app.ID,
			Name:           app.Name,
			Email:          app.Email,
			Stage:          Classify(app.FollowUpStatus),
			FollowUpStatus: app.FollowUpStatus,
			DateEntered:    app.CreatedDate,
			Source:         models.SourceApplication,
		})
	}

	for _, l := range leads {
		if _, dup := seen[NormalizeEmail(l.Email)]; dup {
			continue
		}
		students = append(students, models.Student{
			ID:          l.ID,
			Name:        l.Name,
			Email:       l.Email,
			Stage:       models.StageLead,
			DateEntered: l.CreatedDate,
			Source:      models.SourceDiscovery,
		})
	}

	sort.SliceStable(students, func(i, j int) bool {
		return students[i].DateEntered.After(students[j].DateEntered)
	})
	return students
}

// FunnelCounts tallies students per stage.
func FunnelCounts(students []models.Student) models.StageCounts {
	var c models.StageCounts
	for _, s := range students {
		c.Add(s.Stage)
	}
	return c
}
