package models

import "time"

// LeadsOverTimePoint - new leads and applications in one time bucket
type LeadsOverTimePoint struct {
	Date         string `json:"date"`
	Leads        int    `json:"leads"`
	Applications int    `json:"applications"`
}

// StageEntriesPoint - records entering each stage in one time bucket
type StageEntriesPoint struct {
	Date string `json:"date"`
	StageCounts
}

// CountPoint - a single count in one time bucket
type CountPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// FunnelStep - cumulative stage count with conversion from the previous step
type FunnelStep struct {
	Stage FunnelStage `json:"stage"`
	Count int         `json:"count"`
	Rate  int         `json:"rate"` // percent of previous step, 0-100
}

// DropOff - abandoned records attributed to the stage they left
type DropOff struct {
	Stage FunnelStage `json:"stage"`
	Count int         `json:"count"`
}

// VelocityStat - average days spent on one stage transition
type VelocityStat struct {
	Label   string `json:"label"`
	AvgDays int    `json:"avgDays"`
}

// CounselorRollup - per-counselor stage distribution
type CounselorRollup struct {
	CounselorID string `json:"counselorId"`
	Name        string `json:"name"`
	Total       int    `json:"total"`
	StageCounts
}

// CounselorActivity - referral recency per counselor
type CounselorActivity struct {
	CounselorID      string    `json:"counselorId"`
	Name             string    `json:"name"`
	LastReferralDate time.Time `json:"lastReferralDate"`
	TotalStudents    int       `json:"totalStudents"`
	IsActive         bool      `json:"isActive"`
}

// AnalyticsData - complete analytics response for the dashboard
type AnalyticsData struct {
	StageCounts          StageCounts          `json:"stageCounts"`
	StageCountsPrevious  StageCounts          `json:"stageCountsPrevious"`
	SubStageCounts       map[string]int       `json:"subStageCounts"`
	LeadsOverTime        []LeadsOverTimePoint `json:"leadsOverTime"`
	StageEntriesOverTime []StageEntriesPoint  `json:"stageEntriesOverTime"`
	InterviewsOverTime   []CountPoint         `json:"interviewsOverTime"`
	ConversionFunnel     []FunnelStep         `json:"conversionFunnel"`
	DropOffs             []DropOff            `json:"dropOffs"`
	Velocity             []VelocityStat       `json:"velocity"`
	TopCounselors        []CounselorRollup    `json:"topCounselors"`
	CounselorActivity    []CounselorActivity  `json:"counselorActivity"`
	Period               string               `json:"period"` // "7d", "30d", "90d", "all"
	GeneratedAt          time.Time            `json:"generatedAt"`
}
