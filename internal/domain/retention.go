package domain

import "context"

// RetentionItem identifies one purged invitation in a sweep report.
// MediaError is set when the database aggregate was deleted but the media
// directory could not be removed; the sweep continues past such failures.
type RetentionItem struct {
	Slug       string `json:"slug"`
	GroomName  string `json:"groom_name"`
	BrideName  string `json:"bride_name"`
	MediaError string `json:"media_error,omitempty"`
}

// RetentionReport summarizes one retention sweep run.
// swagger:model RetentionReport
type RetentionReport struct {
	DeletedCount int             `json:"deleted_count"`
	Items        []RetentionItem `json:"items"`
}

// RetentionService purges invitations past the retention window along with
// their media. Sweep is idempotent and safe to trigger repeatedly.
type RetentionService interface {
	Sweep(ctx context.Context) (*RetentionReport, error)
}
