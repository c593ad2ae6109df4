package interfaces

import "context"

// INotificationConfigRepository abstracts externally persisted, admin-editable
// configuration documents: per-event recipient lists, message template
// overrides and field display labels. Documents are read at startup and
// hot-editable without a restart.
//
// Missing documents are not errors: GetRecipients returns an empty list and
// GetTemplate an empty body.

type INotificationConfigRepository interface {
	GetRecipients(ctx context.Context, eventKey string) ([]string, error)
	SetRecipients(ctx context.Context, eventKey string, recipients []string) error
	GetTemplate(ctx context.Context, name string) (string, error)
	SetTemplate(ctx context.Context, name, body string) error
	GetFieldLabels(ctx context.Context) (map[string]string, error)
	SetFieldLabels(ctx context.Context, labels map[string]string) error
}
