package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Success(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewWithEndpoint(server.URL, "public-key", "service-id", "template-id")

	err := client.Send(context.Background(), ContactMessage{
		FromName:  "Ada",
		FromEmail: "ada@example.com",
		Message:   "hello there",
	})

	require.NoError(t, err)
	assert.Equal(t, "service-id", got.ServiceID)
	assert.Equal(t, "template-id", got.TemplateID)
	assert.Equal(t, "public-key", got.UserID)
	assert.Equal(t, "Ada", got.TemplateParams.FromName)
	assert.Equal(t, "ada@example.com", got.TemplateParams.FromEmail)
	assert.Equal(t, "ada@example.com", got.TemplateParams.ReplyTo, "reply_to mirrors from_email")
	assert.Equal(t, "hello there", got.TemplateParams.Message)
	assert.Equal(t, "Message from Icecube", got.TemplateParams.Title)
}

func TestSend_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewWithEndpoint(server.URL, "pk", "svc", "tpl")

	err := client.Send(context.Background(), ContactMessage{
		FromName:  "Ada",
		FromEmail: "ada@example.com",
		Message:   "hello",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestSend_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewWithEndpoint(server.URL, "pk", "svc", "tpl")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Send(ctx, ContactMessage{FromName: "Ada", FromEmail: "a@b.co", Message: "x"})

	assert.Error(t, err)
}
