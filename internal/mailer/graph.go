package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// GraphSender delivers mail through the Microsoft Graph sendMail endpoint
// using the signed-in user's delegated token.
type GraphSender struct {
	baseURL string
	client  *http.Client
	token   func(ctx context.Context) (string, error)
}

// NewGraphSender builds a sender that resolves the access token per message,
// so delivery always uses the caller's current session.
func NewGraphSender(token func(ctx context.Context) (string, error)) *GraphSender {
	return &GraphSender{
		baseURL: graphBaseURL,
		client:  http.DefaultClient,
		token:   token,
	}
}

type graphRecipient struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphAttachment struct {
	ODataType    string `json:"@odata.type"`
	Name         string `json:"name"`
	ContentType  string `json:"contentType"`
	ContentBytes string `json:"contentBytes"`
}

type graphMessage struct {
	Subject string `json:"subject"`
	Body    struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	ToRecipients []graphRecipient  `json:"toRecipients"`
	Attachments  []graphAttachment `json:"attachments,omitempty"`
}

// Send posts the message to /me/sendMail. Graph answers 202 Accepted on
// success; anything else surfaces with the response body for diagnosis.
func (g *GraphSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	token, err := g.token(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve access token: %w", err)
	}

	var gm graphMessage
	gm.Subject = msg.Subject
	gm.Body.ContentType = "HTML"
	gm.Body.Content = msg.HTMLBody
	for _, addr := range msg.To {
		var r graphRecipient
		r.EmailAddress.Address = addr
		gm.ToRecipients = append(gm.ToRecipients, r)
	}
	for _, a := range msg.Attachments {
		gm.Attachments = append(gm.Attachments, graphAttachment{
			ODataType:    "#microsoft.graph.fileAttachment",
			Name:         a.Name,
			ContentType:  a.ContentType,
			ContentBytes: base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	payload, err := json.Marshal(map[string]any{
		"message":         gm,
		"saveToSentItems": true,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/me/sendMail", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sendMail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sendMail returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
