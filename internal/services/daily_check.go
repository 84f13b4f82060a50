package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"partnerdash-be/internal/analytics"
	"partnerdash-be/internal/engagement"
	"partnerdash-be/internal/models"
)

const dailyCheckDays = 30

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8" /></head>
<body style="margin:0;padding:0;background:#f3f4f6;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;">
  <div style="max-width:680px;margin:32px auto;">
    <div style="background:#111827;border-radius:12px 12px 0 0;padding:24px 32px;">
      <h1 style="margin:0;font-size:20px;color:#fff;">RISE Portal &middot; Daily Check</h1>
      <p style="margin:4px 0 0;font-size:13px;color:#9ca3af;">{{.GeneratedAt}} IST</p>
    </div>
    {{if .TotalNotSent}}
    <div style="background:#fef3c7;padding:16px 32px;border-left:4px solid #f59e0b;">
      <p style="margin:0;font-size:14px;font-weight:600;color:#92400e;">{{.TotalNotSent}} people across all sections have not been emailed yet.</p>
    </div>
    {{else}}
    <div style="background:#d1fae5;padding:16px 32px;border-left:4px solid #10b981;">
      <p style="margin:0;font-size:14px;font-weight:600;color:#065f46;">All sections are clear. Everyone has been emailed.</p>
    </div>
    {{end}}
    <div style="padding:24px 32px 32px;background:#fff;border-radius:0 0 12px 12px;">
      {{range .Sections}}
      <div style="margin-bottom:32px;">
        <h2 style="margin:0 0 8px;font-size:14px;color:#111827;">{{.Title}}
          <span style="font-size:12px;font-weight:400;color:#6b7280;">{{len .NotSent}} not sent / {{.Total}} total</span>
        </h2>
        <table style="width:100%;border-collapse:collapse;border:1px solid #e5e7eb;">
          <thead>
            <tr style="background:#f9fafb;">
              <th style="padding:10px 16px;text-align:left;font-size:11px;color:#6b7280;">NAME</th>
              <th style="padding:10px 16px;text-align:left;font-size:11px;color:#6b7280;">EMAIL</th>
              <th style="padding:10px 16px;text-align:left;font-size:11px;color:#6b7280;">STAGE</th>
            </tr>
          </thead>
          <tbody>
          {{range .NotSent}}
            <tr style="border-bottom:1px solid #f3f4f6;">
              <td style="padding:10px 16px;font-size:13px;color:#111827;">{{.Name}}</td>
              <td style="padding:10px 16px;font-size:12px;color:#6b7280;">{{.Email}}</td>
              <td style="padding:10px 16px;font-size:12px;color:#7c3aed;">{{.Status}}</td>
            </tr>
          {{else}}
            <tr><td colspan="3" style="padding:12px 16px;color:#6b7280;font-style:italic;">All caught up, no pending recipients.</td></tr>
          {{end}}
          </tbody>
        </table>
      </div>
      {{end}}
    </div>
  </div>
</body>
</html>`))

// DailyCheckService audits every campaign cohort for people who were never
// emailed and mails the result.
type DailyCheckService struct {
	cohorts    CohortSource
	engagement EngagementReader
	notifier   Notifier
	recipient  string
	now        func() time.Time
	log        *slog.Logger
}

func NewDailyCheckService(cohorts CohortSource, engagement EngagementReader, notifier Notifier, recipient string, now func() time.Time) *DailyCheckService {
	if now == nil {
		now = time.Now
	}
	return &DailyCheckService{
		cohorts:    cohorts,
		engagement: engagement,
		notifier:   notifier,
		recipient:  recipient,
		now:        now,
		log:        slog.Default(),
	}
}

// Run builds the digest and sends it. An unavailable engagement feed is
// treated as empty, so everyone is reported as not sent.
func (s *DailyCheckService) Run(ctx context.Context) (*models.DailyCheckResult, error) {
	now := s.now()

	var records []models.EngagementRecord
	if resp, err := s.engagement.Read(ctx); err != nil {
		s.log.Warn("daily check: engagement unavailable", "error", err)
	} else {
		records = resp.Recipients
	}

	since := now.AddDate(0, 0, -dailyCheckDays)
	result := &models.DailyCheckResult{SentTo: s.recipient, RanAt: now}
	for _, def := range cohortDefinitions {
		members, err := def.load(ctx, s.cohorts, since)
		if err != nil {
			return nil, fmt.Errorf("daily check %s: %w", def.Key, err)
		}
		section := buildSection(def, members, analytics.IndexEngagement(records, def.Campaigns))
		result.TotalNotSent += len(section.NotSent)
		result.Sections = append(result.Sections, section)
	}

	body, err := renderDigest(result, now)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Send(ctx, s.recipient, digestSubject(result.TotalNotSent, now), body); err != nil {
		return nil, fmt.Errorf("send daily check: %w", err)
	}

	s.log.Info("daily check sent", "to", s.recipient, "notSent", result.TotalNotSent)
	result.OK = true
	return result, nil
}

func buildSection(def cohortDefinition, members []models.CohortMember, ix analytics.EngagementIndex) models.DigestSection {
	section := models.DigestSection{
		Cohort:  def.Key,
		Title:   def.Title,
		Total:   len(members),
		NotSent: []models.CohortMember{},
	}
	for _, m := range members {
		if m.Email == "" {
			continue
		}
		if ix.NotSent(m.Email) {
			section.NotSent = append(section.NotSent, m)
		}
	}
	return section
}

func digestSubject(notSent int, now time.Time) string {
	day := now.In(engagement.RefreshZone).Format("02 Jan")
	if notSent > 0 {
		return fmt.Sprintf("RISE Daily Check - %d not emailed (%s)", notSent, day)
	}
	return fmt.Sprintf("RISE Daily Check - All clear (%s)", day)
}

func renderDigest(result *models.DailyCheckResult, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, struct {
		GeneratedAt  string
		TotalNotSent int
		Sections     []models.DigestSection
	}{
		GeneratedAt:  now.In(engagement.RefreshZone).Format("02 Jan 2006, 03:04 PM"),
		TotalNotSent: result.TotalNotSent,
		Sections:     result.Sections,
	})
	if err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
