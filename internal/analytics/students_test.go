package analytics

import (
	"testing"

	"partnerdash-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStudents(t *testing.T) {
	apps := []models.Application{
		app("A1", "a@x.com", "AWA1", daysAgo(10)),
		app("A2", "d@x.com", models.DropStatus, daysAgo(2)),
	}
	leads := []models.Lead{
		lead("L1", "A@X.com", daysAgo(30)), // represented by A1
		lead("L2", "b@x.com", daysAgo(1)),
		lead("L3", "d@x.com", daysAgo(5)), // dropped application does not hide the lead
	}

	students := BuildStudents(apps, leads)
	require.Len(t, students, 3)

	assert.Equal(t, "L2", students[0].ID, "newest first")
	assert.Equal(t, models.StageLead, students[0].Stage)
	assert.Equal(t, models.SourceDiscovery, students[0].Source)

	assert.Equal(t, "L3", students[1].ID)

	assert.Equal(t, "A1", students[2].ID)
	assert.Equal(t, models.StageInterview, students[2].Stage)
	assert.Equal(t, models.SourceApplication, students[2].Source)

	assert.Equal(t, models.StageCounts{Lead: 2, Interview: 1}, FunnelCounts(students))
}

func TestBuildStudents_Empty(t *testing.T) {
	students := BuildStudents(nil, nil)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}
