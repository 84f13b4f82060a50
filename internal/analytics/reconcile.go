package analytics

import (
	"strings"
	"time"

	"partnerdash-be/internal/models"
)

// NormalizeEmail is the join key between every source.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailIndex answers identity questions for one aggregation pass.
type EmailIndex struct {
	applications map[string]struct{}
	leadCreated  map[string]time.Time
}

func NewEmailIndex(leads []models.Lead, apps []models.Application) *EmailIndex {
	ix := &EmailIndex{
		applications: make(map[string]struct{}, len(apps)),
		leadCreated:  make(map[string]time.Time, len(leads)),
	}
	for _, a := range apps {
		if email := NormalizeEmail(a.Email); email != "" {
			ix.applications[email] = struct{}{}
		}
	}
	for _, l := range leads {
		email := NormalizeEmail(l.Email)
		if email == "" {
			continue
		}
		// first lead per email wins
		if _, seen := ix.leadCreated[email]; !seen {
			ix.leadCreated[email] = l.CreatedDate
		}
	}
	return ix
}

// HasApplication reports whether any application carries email.
func (ix *EmailIndex) HasApplication(email string) bool {
	_, ok := ix.applications[NormalizeEmail(email)]
	return ok
}

// LeadCreated returns when the person behind email first became a lead.
func (ix *EmailIndex) LeadCreated(email string) (time.Time, bool) {
	t, ok := ix.leadCreated[NormalizeEmail(email)]
	return t, ok
}

// UniqueLeads drops leads without an email and leads superseded by an
// application with the same email. The input is not modified.
func UniqueLeads(leads []models.Lead, ix *EmailIndex) []models.Lead {
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if NormalizeEmail(l.Email) == "" || ix.HasApplication(l.Email) {
			continue
		}
		out = append(out, l)
	}
	return out
}
