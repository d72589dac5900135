// Package mailer sends generated documents by email. The service composes
// the message; delivery goes through a Sender so tests and development can
// swap the Microsoft Graph transport for a recording fake.
package mailer

import "context"

// Attachment is a file attached to an outgoing message.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// Message is one outgoing email.
type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
