package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"partnerdash-be/internal/airtable"
	"partnerdash-be/internal/models"
	"partnerdash-be/internal/utils"
)

// ErrNoFields is returned when an update carries nothing to change.
var ErrNoFields = errors.New("no fields to update")

var conversationFields = []string{"Title", "Date", "Notes", "Attendee", "Counselor"}

type ConversationRepository struct {
	store      RecordStore
	writeToken string
}

func NewConversationRepository(store RecordStore, writeToken string) *ConversationRepository {
	return &ConversationRepository{store: store, writeToken: writeToken}
}

// ListForCounselor returns conversations linked to the counselor record, newest first.
func (r *ConversationRepository) ListForCounselor(ctx context.Context, counselorRecordID string) ([]models.Conversation, error) {
	records, err := r.store.FetchAll(ctx, CounselorDBBase, ConversationsTable, airtable.FetchOptions{Fields: conversationFields})
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	conversations := []models.Conversation{}
	for _, rec := range records {
		if !contains(rec.Strings("Counselor"), counselorRecordID) {
			continue
		}
		conversations = append(conversations, toConversation(rec))
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].Date > conversations[j].Date
	})
	return conversations, nil
}

// Create logs a conversation. Notes are reduced to plain text.
func (r *ConversationRepository) Create(ctx context.Context, req models.CreateConversationRequest) (*models.Conversation, error) {
	name := req.CounselorName
	if name == "" {
		name = "Unknown"
	}
	fields := map[string]any{
		"Title":     "Meeting - " + name,
		"Counselor": []string{req.CounselorRecordID},
		"Notes":     utils.SanitizeHTML(req.Notes),
	}
	if req.Date != "" {
		fields["Date"] = req.Date
	}
	if req.Attendee != "" {
		fields["Attendee"] = req.Attendee
	}

	rec, err := r.store.CreateRecord(ctx, CounselorDBBase, ConversationsTable, fields, r.writeToken)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	c := toConversation(*rec)
	return &c, nil
}

func toConversation(rec airtable.Record) models.Conversation {
	return models.Conversation{
		ID:          rec.ID,
		Title:       rec.String("Title"),
		Date:        rec.String("Date"),
		Notes:       rec.String("Notes"),
		Attendee:    rec.String("Attendee"),
		CompanyName: rec.String("Title"),
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
