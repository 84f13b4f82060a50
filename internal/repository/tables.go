package repository

import (
	"context"

	"partnerdash-be/internal/airtable"
)

// Airtable bases and tables.
const (
	StudentPipelineBase   = "appyvj8Xh10kGWbJN"
	DiscoveryCallTable    = "tblCQAqQEbO1cHavW"
	ApplicationTable      = "tblpsa6QdGW9qmyll"
	CounselorRecordsTable = "tblzcy02PoVxhAXId"

	CounselorDBBase    = "appU2cJpIWIHQI4up"
	CounselorDBTable   = "tblxCiUOdN435Zfju"
	ConversationsTable = "tblIg6bBDbLvsvPiJ"
)

// recordIDBatchSize keeps RECORD_ID() formulas under Airtable's URL limits.
const recordIDBatchSize = 20

// RecordSource reads whole tables.
type RecordSource interface {
	FetchAll(ctx context.Context, baseID, tableID string, opts airtable.FetchOptions) ([]airtable.Record, error)
}

// RecordStore reads and writes records.
type RecordStore interface {
	RecordSource
	CreateRecord(ctx context.Context, baseID, tableID string, fields map[string]any, token string) (*airtable.Record, error)
	UpdateRecord(ctx context.Context, baseID, tableID, recordID string, fields map[string]any, token string) (*airtable.Record, error)
}

// fetchByIDs reads the given records in formula-sized batches.
func fetchByIDs(ctx context.Context, src RecordSource, baseID, tableID string, ids []string, fields []string) ([]airtable.Record, error) {
	var out []airtable.Record
	for start := 0; start < len(ids); start += recordIDBatchSize {
		end := min(start+recordIDBatchSize, len(ids))
		records, err := src.FetchAll(ctx, baseID, tableID, airtable.FetchOptions{
			Fields: fields,
			Filter: airtable.RecordIDFormula(ids[start:end]),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, records...)
	}
	return out, nil
}
