// Package mailer delivers contact-form messages through the EmailJS
// REST API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	emailJSSendURL = "https://api.emailjs.com/api/v1.0/email/send"

	// every message routes through the same template; the title is a
	// fixed template parameter, not user input
	messageTitle = "Message from Icecube"
)

// shared HTTP client for EmailJS calls
var emailJSHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for EmailJS calls (1 request/second with burst capacity of 3)
var emailJSRateLimiter = rate.NewLimiter(1, 3)

// Client sends templated transactional email through EmailJS.
type Client struct {
	endpoint   string
	publicKey  string
	serviceID  string
	templateID string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// creates a new EmailJS client
func New(publicKey, serviceID, templateID string) *Client {
	return &Client{
		endpoint:   emailJSSendURL,
		publicKey:  publicKey,
		serviceID:  serviceID,
		templateID: templateID,
		httpClient: emailJSHTTPClient,
		limiter:    emailJSRateLimiter,
	}
}

// creates a client pointed at a custom endpoint; used by tests
func NewWithEndpoint(endpoint, publicKey, serviceID, templateID string) *Client {
	c := New(publicKey, serviceID, templateID)
	c.endpoint = endpoint
	c.limiter = rate.NewLimiter(rate.Inf, 1)

	return c
}

// sends one contact message through the configured template. Any
// non-200 status from EmailJS is an error; the caller decides how to
// surface it and whether to count the submission.
func (c *Client) Send(ctx context.Context, msg ContactMessage) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	payload := sendRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: templateParams{
			FromName:  msg.FromName,
			FromEmail: msg.FromEmail,
			ReplyTo:   msg.FromEmail,
			Message:   msg.Message,
			Title:     messageTitle,
		},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512)) //nolint:errcheck // body is diagnostic only
		return fmt.Errorf("emailjs send failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
