package interfaces

import "context"

// IMailTransport abstracts the outgoing mail collaborator (e.g. SMTP relay).
// Delivery is one attempt per call; retry policy belongs to the caller.
type IMailTransport interface {
	Deliver(ctx context.Context, recipient, subject, body string) error
}
