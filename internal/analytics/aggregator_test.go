package analytics

import (
	"testing"
	"time"

	"partnerdash-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func daysAgo(n float64) time.Time {
	return testNow.Add(-time.Duration(n * float64(24*time.Hour)))
}

func ptr(t time.Time) *time.Time { return &t }

func lead(id, email string, created time.Time) models.Lead {
	return models.Lead{ID: id, Name: id, Email: email, CreatedDate: created}
}

func app(id, email, status string, created time.Time) models.Application {
	return models.Application{
		ID:             id,
		Name:           id,
		Email:          email,
		FollowUpStatus: status,
		Dropped:        status == models.DropStatus,
		CreatedDate:    created,
		LastModified:   created,
	}
}

func compute(in Input) models.AnalyticsData {
	return NewAggregator(func() time.Time { return testNow }).Compute(in)
}

func TestCompute_SupersessionInStageCounts(t *testing.T) {
	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "a@x.com", daysAgo(5)),
			lead("L2", "b@x.com", daysAgo(5)),
		},
		Applications: []models.Application{app("A1", "a@x.com", "", daysAgo(3))},
		Period:       Period30d,
	})

	assert.Equal(t, models.StageCounts{Lead: 1, Application: 1}, data.StageCounts)
	assert.Equal(t, "30d", data.Period)
	assert.Equal(t, testNow, data.GeneratedAt)
}

func TestCompute_PreviousWindowAndDropExclusion(t *testing.T) {
	data := compute(Input{
		Leads: []models.Lead{lead("L1", "a@x.com", daysAgo(40))},
		Applications: []models.Application{
			app("A1", "b@x.com", "AWA1", daysAgo(10)),
			app("A2", "c@x.com", models.DropStatus, daysAgo(10)),
			app("A3", "d@x.com", "Client", daysAgo(45)),
		},
		Period: Period30d,
	})

	assert.Equal(t, models.StageCounts{Interview: 1}, data.StageCounts)
	assert.Equal(t, models.StageCounts{Lead: 1, Client: 1}, data.StageCountsPrevious)
}

func TestCompute_AllTimeHasNoComparison(t *testing.T) {
	data := compute(Input{
		Leads:  []models.Lead{lead("L1", "a@x.com", daysAgo(900))},
		Period: PeriodAll,
	})
	assert.Equal(t, 1, data.StageCounts.Lead)
	assert.Equal(t, models.StageCounts{}, data.StageCountsPrevious)
}

func TestCompute_UnknownPeriodFallsBackTo30d(t *testing.T) {
	data := compute(Input{Period: Period("fortnight")})
	assert.Equal(t, "30d", data.Period)
}

func TestCompute_SubStageCounts(t *testing.T) {
	data := compute(Input{
		Applications: []models.Application{
			app("A1", "a@x.com", "", daysAgo(1)),
			app("A2", "b@x.com", "SWA1", daysAgo(1)),
			app("A3", "c@x.com", "AWA2", daysAgo(1)),
			app("A4", "d@x.com", "Client", daysAgo(1)),
			app("A5", "e@x.com", models.DropStatus, daysAgo(1)),
		},
	})

	require.Len(t, data.SubStageCounts, len(SubStages))
	assert.Equal(t, 2, data.SubStageCounts["SWA1"])
	assert.Equal(t, 1, data.SubStageCounts["AWA2"])
	assert.Equal(t, 0, data.SubStageCounts["Call Payment"])
}

func TestCompute_ConversionFunnel(t *testing.T) {
	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "l1@x.com", daysAgo(2)),
			lead("L2", "l2@x.com", daysAgo(2)),
		},
		Applications: []models.Application{
			app("A1", "a@x.com", "AWA1", daysAgo(2)),
			app("A2", "b@x.com", "Client", daysAgo(2)),
			app("A3", "c@x.com", "", daysAgo(2)),
			app("A4", "d@x.com", models.DropStatus, daysAgo(2)),
		},
	})

	assert.Equal(t, []models.FunnelStep{
		{Stage: models.StageLead, Count: 5, Rate: 100},
		{Stage: models.StageApplication, Count: 3, Rate: 60},
		{Stage: models.StageInterview, Count: 2, Rate: 67},
		{Stage: models.StageClient, Count: 1, Rate: 50},
	}, data.ConversionFunnel)
}

func TestCompute_ConversionFunnelEmpty(t *testing.T) {
	data := compute(Input{})
	for _, step := range data.ConversionFunnel[1:] {
		assert.Equal(t, 0, step.Rate, step.Stage)
	}
	assert.Equal(t, 100, data.ConversionFunnel[0].Rate)
}

func TestCompute_DropOffAttribution(t *testing.T) {
	interviewed := app("A1", "a@x.com", models.DropStatus, daysAgo(20))
	interviewed.InterviewDate = ptr(daysAgo(10))

	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "old@x.com", daysAgo(45)),
			lead("L2", "new@x.com", daysAgo(10)),
		},
		Applications: []models.Application{
			interviewed,
			app("A2", "b@x.com", models.DropStatus, daysAgo(20)),
			app("A3", "c@x.com", models.DropStatus, daysAgo(20)),
		},
	})

	assert.Equal(t, []models.DropOff{
		{Stage: models.StageLead, Count: 1},
		{Stage: models.StageApplication, Count: 2},
		{Stage: models.StageInterview, Count: 1},
	}, data.DropOffs)
}

func TestCompute_DropOffsOmitZeroStages(t *testing.T) {
	data := compute(Input{
		Applications: []models.Application{app("A1", "a@x.com", models.DropStatus, daysAgo(5))},
	})
	assert.Equal(t, []models.DropOff{{Stage: models.StageApplication, Count: 1}}, data.DropOffs)
}

func TestCompute_VelocityAverages(t *testing.T) {
	var apps []models.Application
	for i, d := range []float64{5, 10, 15, 400} {
		a := app("A"+string(rune('1'+i)), string(rune('a'+i))+"@x.com", "AWA1", daysAgo(500))
		a.InterviewDate = ptr(a.CreatedDate.Add(time.Duration(d * float64(24*time.Hour))))
		apps = append(apps, a)
	}

	data := compute(Input{Applications: apps, Period: PeriodAll})
	require.Len(t, data.Velocity, 3)
	assert.Equal(t, 10, data.Velocity[1].AvgDays, "400-day outlier excluded")
	assert.Equal(t, 0, data.Velocity[0].AvgDays, "no leads means no samples")
	assert.Equal(t, 0, data.Velocity[2].AvgDays, "no clients means no samples")
}

func TestCompute_VelocityUsesRawLeadsAndDiscardsNegative(t *testing.T) {
	client := app("A1", "a@x.com", "Client", daysAgo(20))
	client.InterviewDate = ptr(daysAgo(12))
	client.LastModified = daysAgo(10)

	backwards := app("A2", "b@x.com", "", daysAgo(50))

	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "a@x.com", daysAgo(24)),
			lead("L2", "b@x.com", daysAgo(40)),
		},
		Applications: []models.Application{client, backwards},
	})

	assert.Equal(t, 4, data.Velocity[0].AvgDays, "superseded lead still feeds Lead→Application")
	assert.Equal(t, 8, data.Velocity[1].AvgDays)
	assert.Equal(t, 2, data.Velocity[2].AvgDays)
}

func TestAverageDays_Rounds(t *testing.T) {
	assert.Equal(t, 0, averageDays(nil))
	assert.Equal(t, 10, averageDays([]float64{5, 10, 15}))
	assert.Equal(t, 3, averageDays([]float64{2, 3.5}))
}

func TestCompute_DailyBucketsFor30d(t *testing.T) {
	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "a@x.com", time.Date(2024, 3, 27, 8, 0, 0, 0, time.UTC)),
			lead("L2", "b@x.com", time.Date(2024, 3, 28, 8, 0, 0, 0, time.UTC)),
			lead("L3", "c@x.com", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
		},
		Applications: []models.Application{app("A1", "d@x.com", "", time.Date(2024, 3, 27, 9, 0, 0, 0, time.UTC))},
		Period:       Period30d,
	})

	assert.Equal(t, []models.LeadsOverTimePoint{
		{Date: "2024-03-27", Leads: 1, Applications: 1},
		{Date: "2024-03-28", Leads: 1},
	}, data.LeadsOverTime)
}

func TestCompute_WeeklyBucketsFor90dAndAll(t *testing.T) {
	leads := []models.Lead{
		lead("L1", "a@x.com", time.Date(2024, 3, 27, 8, 0, 0, 0, time.UTC)),
		lead("L2", "b@x.com", time.Date(2024, 3, 28, 8, 0, 0, 0, time.UTC)),
	}
	for _, p := range []Period{Period90d, PeriodAll} {
		data := compute(Input{Leads: leads, Period: p})
		assert.Equal(t, []models.StageEntriesPoint{
			{Date: "2024-03-25", StageCounts: models.StageCounts{Lead: 2}},
		}, data.StageEntriesOverTime, p)
	}
}

func TestCompute_SupersededLeadsLeaveTimeSeries(t *testing.T) {
	data := compute(Input{
		Leads:        []models.Lead{lead("L1", "A@x.com ", time.Date(2024, 3, 29, 8, 0, 0, 0, time.UTC))},
		Applications: []models.Application{app("A1", "a@x.com", "", time.Date(2024, 3, 30, 9, 0, 0, 0, time.UTC))},
		Period:       Period30d,
	})

	assert.Equal(t, []models.LeadsOverTimePoint{
		{Date: "2024-03-30", Leads: 0, Applications: 1},
	}, data.LeadsOverTime)
	assert.Equal(t, []models.StageEntriesPoint{
		{Date: "2024-03-30", StageCounts: models.StageCounts{Application: 1}},
	}, data.StageEntriesOverTime)
}

func TestCompute_InterviewsOverTime(t *testing.T) {
	a1 := app("A1", "a@x.com", "AWA1", daysAgo(60))
	a1.InterviewDate = ptr(time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC))
	a2 := app("A2", "b@x.com", "AWA1", daysAgo(60))
	a2.InterviewDate = ptr(time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC))
	a3 := app("A3", "c@x.com", "AWA1", daysAgo(60))
	a3.InterviewDate = ptr(daysAgo(100))

	daily := compute(Input{Applications: []models.Application{a1, a2, a3}, Period: Period30d})
	assert.Equal(t, []models.CountPoint{
		{Date: "2024-03-20", Count: 1},
		{Date: "2024-03-21", Count: 1},
	}, daily.InterviewsOverTime)

	weekly := compute(Input{Applications: []models.Application{a1, a2}, Period: Period90d})
	assert.Equal(t, []models.CountPoint{{Date: "2024-03-18", Count: 2}}, weekly.InterviewsOverTime)
}

func TestCompute_CounselorRollups(t *testing.T) {
	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "l1@x.com", daysAgo(3)),
			lead("L2", "a@x.com", daysAgo(90)), // superseded by A1
			lead("L3", "l3@x.com", daysAgo(100)),
		},
		Applications: []models.Application{
			app("A1", "a@x.com", "AWA1", daysAgo(80)),
			app("A2", "b@x.com", "Client", daysAgo(70)),
			app("A3", "c@x.com", models.DropStatus, daysAgo(1)),
		},
		Links: []models.CounselorLink{
			{CounselorID: "PR1", DiscoveryCallIDs: []string{"L1", "L2"}, ApplicationIDs: []string{"A1"}},
			{CounselorID: "PR2", DiscoveryCallIDs: []string{"L3"}, ApplicationIDs: []string{"A2"}},
			{CounselorID: "PR3", ApplicationIDs: []string{"A3"}},
			{CounselorID: "", ApplicationIDs: []string{"A2"}},
		},
		CounselorNames: map[string]string{"PR1": "Bright Futures", "PR2": "Acme Edu"},
		Period:         Period30d,
	})

	require.Len(t, data.TopCounselors, 2, "drop-only counselor is excluded")
	assert.Equal(t, "Acme Edu", data.TopCounselors[0].Name, "ties break by name")
	assert.Equal(t, 2, data.TopCounselors[0].Total)
	assert.Equal(t, models.StageCounts{Lead: 1, Client: 1}, data.TopCounselors[0].StageCounts)
	assert.Equal(t, models.StageCounts{Lead: 1, Interview: 1}, data.TopCounselors[1].StageCounts)

	require.Len(t, data.CounselorActivity, 2)
	assert.Equal(t, "PR1", data.CounselorActivity[0].CounselorID, "most recent first")
	assert.True(t, data.CounselorActivity[0].IsActive)
	assert.Equal(t, daysAgo(3), data.CounselorActivity[0].LastReferralDate)
	assert.False(t, data.CounselorActivity[1].IsActive)
	assert.Equal(t, daysAgo(70), data.CounselorActivity[1].LastReferralDate)
}

func TestCompute_CounselorRollupsCountLeadsWithoutEmail(t *testing.T) {
	data := compute(Input{
		Leads: []models.Lead{
			lead("L1", "", daysAgo(3)),
			lead("L2", "a@x.com", daysAgo(5)), // superseded by A1
		},
		Applications: []models.Application{app("A1", "a@x.com", "", daysAgo(4))},
		Links: []models.CounselorLink{
			{CounselorID: "PR1", DiscoveryCallIDs: []string{"L1", "L2"}},
		},
		Period: Period30d,
	})

	require.Len(t, data.TopCounselors, 1)
	assert.Equal(t, models.StageCounts{Lead: 1}, data.TopCounselors[0].StageCounts)
	require.Len(t, data.CounselorActivity, 1)
	assert.Equal(t, daysAgo(3), data.CounselorActivity[0].LastReferralDate)
}

func TestCompute_TopCounselorsLimit(t *testing.T) {
	var apps []models.Application
	var links []models.CounselorLink
	for i := 0; i < TopCounselorLimit+3; i++ {
		id := string(rune('a' + i))
		apps = append(apps, app("A"+id, id+"@x.com", "", daysAgo(1)))
		links = append(links, models.CounselorLink{CounselorID: "PR" + id, ApplicationIDs: []string{"A" + id}})
	}

	data := compute(Input{Applications: apps, Links: links})
	assert.Len(t, data.TopCounselors, TopCounselorLimit)
	assert.Len(t, data.CounselorActivity, TopCounselorLimit+3)
	assert.Equal(t, "PRa", data.TopCounselors[0].Name, "unnamed counselors fall back to their id")
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	leads := []models.Lead{lead("L1", "A@x.com", daysAgo(1))}
	apps := []models.Application{app("A1", "a@x.com", "", daysAgo(1))}
	compute(Input{Leads: leads, Applications: apps})

	assert.Equal(t, "A@x.com", leads[0].Email)
	assert.Len(t, leads, 1)
}
