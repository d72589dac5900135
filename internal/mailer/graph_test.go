package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(tok string) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) { return tok, nil }
}

func TestGraphSenderSend(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/me/sendMail", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	g := &GraphSender{baseURL: srv.URL, client: srv.Client(), token: staticToken("tok-123")}

	err := g.Send(context.Background(), Message{
		To:       []string{"dean@university.edu"},
		Subject:  "Generated request",
		HTMLBody: "<p>Attached.</p>",
		Attachments: []Attachment{{
			Name:        "General_Petition_abc.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF fake"),
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)

	msg := gotBody["message"].(map[string]any)
	assert.Equal(t, "Generated request", msg["subject"])

	atts := msg["attachments"].([]any)
	require.Len(t, atts, 1)
	att := atts[0].(map[string]any)
	assert.Equal(t, "#microsoft.graph.fileAttachment", att["@odata.type"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF fake")), att["contentBytes"])
}

func TestGraphSenderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"InvalidAuthenticationToken"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := &GraphSender{baseURL: srv.URL, client: srv.Client(), token: staticToken("expired")}

	err := g.Send(context.Background(), Message{To: []string{"x@y.z"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "InvalidAuthenticationToken")
}

func TestGraphSenderNoRecipients(t *testing.T) {
	g := NewGraphSender(staticToken("tok"))
	assert.Error(t, g.Send(context.Background(), Message{Subject: "no one"}))
}

func TestMockSenderRecords(t *testing.T) {
	m := NewMockSender()
	require.NoError(t, m.Send(context.Background(), Message{Subject: "one"}))
	require.NoError(t, m.Send(context.Background(), Message{Subject: "two"}))

	sent := m.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "one", sent[0].Subject)
	assert.Equal(t, "two", sent[1].Subject)
}
