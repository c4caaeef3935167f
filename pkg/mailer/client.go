package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// messagesEndpoint is the provider's send path, appended to the base URL.
const messagesEndpoint = "messages"

// DeliveryErrorKind classifies a failed send.
type DeliveryErrorKind int

const (
	// DeliveryTransport covers connection, DNS and TLS failures.
	DeliveryTransport DeliveryErrorKind = iota
	// DeliveryTimeout means the configured timeout elapsed before a response.
	DeliveryTimeout
	// DeliveryProviderRejected means the provider answered with a non-2xx status.
	DeliveryProviderRejected
)

// DeliveryError is the failure taxonomy of Client.Send. The credential never
// appears in its message.
type DeliveryError struct {
	Kind   DeliveryErrorKind
	Status int // provider HTTP status, set for DeliveryProviderRejected
	cause  error
}

func (e *DeliveryError) Error() string {
	switch e.Kind {
	case DeliveryTimeout:
		return "email delivery timed out"
	case DeliveryProviderRejected:
		return fmt.Sprintf("email provider rejected the request with status %d", e.Status)
	default:
		return "email delivery transport failure"
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.cause
}

// Client sends transactional email through the provider's messages API:
// POST {base}/messages with basic auth (user "api") and a JSON body.
type Client struct {
	baseURL    string
	sender     string
	apiKey     SecretString
	httpClient *http.Client
}

type sendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// NewClient builds a provider client. timeout bounds every Send round-trip.
func NewClient(baseURL, sender string, apiKey SecretString, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		sender:     sender,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send delivers one email. It performs exactly one network call and never
// retries; retry policy belongs to the caller.
func (c *Client) Send(ctx context.Context, recipient, subject, html, text string) error {
	body, err := json.Marshal(sendEmailRequest{
		From:    c.sender,
		To:      recipient,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return &DeliveryError{Kind: DeliveryTransport, cause: err}
	}

	url := c.baseURL + "/" + messagesEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Kind: DeliveryTransport, cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("api", c.apiKey.Reveal())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &DeliveryError{Kind: DeliveryTimeout, cause: err}
		}
		return &DeliveryError{Kind: DeliveryTransport, cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DeliveryError{Kind: DeliveryProviderRejected, Status: resp.StatusCode}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
