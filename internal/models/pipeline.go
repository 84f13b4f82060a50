package models

import "time"

// FunnelStage is the closed, ordered set of pipeline stages.
type FunnelStage string

const (
	StageLead        FunnelStage = "Lead"
	StageApplication FunnelStage = "Application"
	StageInterview   FunnelStage = "Interview"
	StageClient      FunnelStage = "Client"
)

// FunnelStages lists every stage in pipeline order.
var FunnelStages = []FunnelStage{StageLead, StageApplication, StageInterview, StageClient}

// Rank returns the position of the stage in the funnel, or -1 if unknown.
func (s FunnelStage) Rank() int {
	for i, stage := range FunnelStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// DropStatus is the follow-up status marking an application as abandoned.
const DropStatus = "Drop"

// Lead - a discovery call record
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"` // lowercased
	CreatedDate time.Time `json:"createdDate"`
}

// Application - a program application record
type Application struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"` // lowercased
	FollowUpStatus string     `json:"followUpStatus,omitempty"`
	Dropped        bool       `json:"dropped"`
	CreatedDate    time.Time  `json:"createdDate"`
	InterviewDate  *time.Time `json:"interviewDate,omitempty"`
	LastModified   time.Time  `json:"lastModified"`
}

// CounselorLink - ties a counselor to the leads and applications they referred
type CounselorLink struct {
	CounselorID      string   `json:"counselorId"`
	DiscoveryCallIDs []string `json:"discoveryCallIds"`
	ApplicationIDs   []string `json:"applicationIds"`
}

// StageCounts holds one count per funnel stage
type StageCounts struct {
	Lead        int `json:"Lead"`
	Application int `json:"Application"`
	Interview   int `json:"Interview"`
	Client      int `json:"Client"`
}

// Add increments the count for stage.
func (c *StageCounts) Add(stage FunnelStage) {
	switch stage {
	case StageLead:
		c.Lead++
	case StageApplication:
		c.Application++
	case StageInterview:
		c.Interview++
	case StageClient:
		c.Client++
	}
}

// Get returns the count for stage.
func (c StageCounts) Get(stage FunnelStage) int {
	switch stage {
	case StageLead:
		return c.Lead
	case StageApplication:
		return c.Application
	case StageInterview:
		return c.Interview
	case StageClient:
		return c.Client
	}
	return 0
}

// Total sums every stage.
func (c StageCounts) Total() int {
	return c.Lead + c.Application + c.Interview + c.Client
}
