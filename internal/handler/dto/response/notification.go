package response

import (
	"time"

	"storefront-engine/internal/domain/notification"
)

type NotificationResponse struct {
	Seq      int64     `json:"seq"`
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	Ref      string    `json:"ref,omitempty"`
	At       time.Time `json:"at"`
}

type NotificationFeedResponse struct {
	Items   []NotificationResponse `json:"items"`
	LastSeq int64                  `json:"lastSeq"`
}

func FromNotificationRecords(records []notification.Record, lastSeq int64) *NotificationFeedResponse {
	items := make([]NotificationResponse, len(records))
	for i, r := range records {
		items[i] = NotificationResponse{
			Seq:      r.Seq,
			Kind:     string(r.Kind),
			Title:    r.Title,
			Message:  r.Message,
			Severity: r.Severity.String(),
			Ref:      r.Ref,
			At:       r.At,
		}
	}
	return &NotificationFeedResponse{Items: items, LastSeq: lastSeq}
}
