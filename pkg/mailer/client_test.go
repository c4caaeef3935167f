package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Username    string
	Password    string
	Body        map[string]string
}

func recordingServer(t *testing.T, status int, recorded *[]recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		user, pass, _ := r.BasicAuth()
		*recorded = append(*recorded, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Username:    user,
			Password:    pass,
			Body:        body,
		})
		w.WriteHeader(status)
	}))
}

func TestClient_Send_FiresOneProviderRequest(t *testing.T) {
	var recorded []recordedRequest
	srv := recordingServer(t, http.StatusOK, &recorded)
	defer srv.Close()

	client := NewClient(srv.URL, "newsletter@example.com", NewSecretString("secret-key"), time.Second)
	err := client.Send(context.Background(), "ursula_le_guin@gmail.com", "Welcome!", "<p>hi</p>", "hi")
	require.NoError(t, err)

	require.Len(t, recorded, 1)
	req := recorded[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/messages", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.Equal(t, "api", req.Username)
	assert.Equal(t, "secret-key", req.Password)
	assert.Equal(t, map[string]string{
		"from":    "newsletter@example.com",
		"to":      "ursula_le_guin@gmail.com",
		"subject": "Welcome!",
		"html":    "<p>hi</p>",
		"text":    "hi",
	}, req.Body)
}

func TestClient_Send_ProviderRejection(t *testing.T) {
	var recorded []recordedRequest
	srv := recordingServer(t, http.StatusInternalServerError, &recorded)
	defer srv.Close()

	client := NewClient(srv.URL, "newsletter@example.com", NewSecretString("secret-key"), time.Second)
	err := client.Send(context.Background(), "a@b.co", "s", "h", "t")
	require.Error(t, err)

	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, DeliveryProviderRejected, derr.Kind)
	assert.Equal(t, http.StatusInternalServerError, derr.Status)
}

func TestClient_Send_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "newsletter@example.com", NewSecretString("secret-key"), 50*time.Millisecond)
	err := client.Send(context.Background(), "a@b.co", "s", "h", "t")
	require.Error(t, err)

	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, DeliveryTimeout, derr.Kind)
}

func TestClient_Send_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, "newsletter@example.com", NewSecretString("secret-key"), time.Second)
	err := client.Send(context.Background(), "a@b.co", "s", "h", "t")
	require.Error(t, err)

	var derr *DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, DeliveryTransport, derr.Kind)
}

func TestClient_Send_ErrorNeverLeaksCredential(t *testing.T) {
	var recorded []recordedRequest
	srv := recordingServer(t, http.StatusUnauthorized, &recorded)
	defer srv.Close()

	client := NewClient(srv.URL, "newsletter@example.com", NewSecretString("super-secret"), time.Second)
	err := client.Send(context.Background(), "a@b.co", "s", "h", "t")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret")
}

func TestSecretString_Redaction(t *testing.T) {
	s := NewSecretString("super-secret")
	assert.Equal(t, "[redacted]", s.String())
	assert.Equal(t, "super-secret", s.Reveal())

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"[redacted]"`, string(b))
}

func TestDeliveryError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &DeliveryError{Kind: DeliveryTransport, cause: cause}
	assert.ErrorIs(t, err, cause)
}
