package models

import "time"

// Counselor - a referral partner
type Counselor struct {
	RecordID          string   `json:"recordId"`
	CounselorID       string   `json:"counselorId"`
	CompanyName       string   `json:"companyName"`
	FirstName         string   `json:"firstName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone,omitempty"`
	ScholarshipAmount *float64 `json:"scholarshipAmount,omitempty"`
	ReferralAmount    *float64 `json:"referralAmount,omitempty"` // fraction, 0.1 = 10%
	POC               []string `json:"poc"`
	Country           string   `json:"country,omitempty"`
	Capacity          string   `json:"capacity,omitempty"`
	FollowUpStatus    string   `json:"followUpStatus,omitempty"`
	Slug              string   `json:"slug"`
}

// StudentSource tells which table a partner's student came from
type StudentSource string

const (
	SourceDiscovery   StudentSource = "discovery"
	SourceApplication StudentSource = "application"
)

// Student - one referred person as shown on a partner view
type Student struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Stage          FunnelStage   `json:"stage"`
	FollowUpStatus string        `json:"followUpStatus,omitempty"`
	DateEntered    time.Time     `json:"dateEntered"`
	Source         StudentSource `json:"source"`
}

// Conversation - a logged call or meeting with a partner
type Conversation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Notes       string `json:"notes"`
	Attendee    string `json:"attendee"`
	CompanyName string `json:"companyName"`
}

// PartnerView - the page a partner (or the CEO) sees for one counselor
type PartnerView struct {
	Counselor     Counselor      `json:"counselor"`
	Students      []Student      `json:"students"`
	FunnelCounts  StageCounts    `json:"funnelCounts"`
	IsCEOView     bool           `json:"isCeoView"`
	Conversations []Conversation `json:"conversations,omitempty"`
}

// CreateCounselorRequest - payload for onboarding a partner
type CreateCounselorRequest struct {
	CompanyName       string   `json:"companyName" binding:"required"`
	FirstName         string   `json:"firstName" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Phone             string   `json:"phone"`
	Country           string   `json:"country" binding:"required"`
	POC               []string `json:"poc" binding:"required,min=1"`
	CounselorID       string   `json:"counselorId"`
	ScholarshipAmount *float64 `json:"scholarshipAmount"`
	ReferralAmount    *float64 `json:"referralAmount"` // percent, stored as a fraction
	Capacity          string   `json:"capacity"`
	FollowUpStatus    string   `json:"followUpStatus"`
}

// UpdateCounselorRequest - partial update; nil fields are left unchanged
type UpdateCounselorRequest struct {
	CompanyName       *string  `json:"companyName"`
	FirstName         *string  `json:"firstName"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	Phone             *string  `json:"phone"`
	Country           *string  `json:"country"`
	POC               []string `json:"poc"`
	ScholarshipAmount *float64 `json:"scholarshipAmount"`
	ReferralAmount    *float64 `json:"referralAmount"` // percent
	Capacity          *string  `json:"capacity"`
	FollowUpStatus    *string  `json:"followUpStatus"`
}

// CreateConversationRequest - payload for logging a conversation
type CreateConversationRequest struct {
	CounselorRecordID string `json:"counselorRecordId" binding:"required"`
	CounselorName     string `json:"counselorName"`
	Date              string `json:"date"` // YYYY-MM-DD
	Notes             string `json:"notes" binding:"required"`
	Attendee          string `json:"attendee"`
}
