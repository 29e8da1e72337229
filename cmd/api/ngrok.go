package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"growling-tummy/pkg/log"
)

const (
	ngrokAttempts      = 10
	ngrokRetryInterval = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// publicURL prefers an HTTPS tunnel. Dialogflow and Alexa both reject plain
// HTTP fulfillment URLs.
func (r ngrokTunnelsResponse) publicURL() (string, error) {
	for _, t := range r.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(r.Tunnels) > 0 {
		return r.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}

// detectNgrokURL polls the ngrok local API until a tunnel shows up, since
// ngrok may still be starting when the service boots.
func detectNgrokURL(ctx context.Context, client *http.Client, ngrokAPIBase string, interval time.Duration) (string, error) {
	endpoint := strings.TrimRight(ngrokAPIBase, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		tunnels, err := fetchTunnels(ctx, client, endpoint)
		if err == nil {
			url, urlErr := tunnels.publicURL()
			if urlErr == nil {
				return url, nil
			}
			err = urlErr
		}
		lastErr = err

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}

	return "", fmt.Errorf("ngrok URL not found after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnels(ctx context.Context, client *http.Client, endpoint string) (ngrokTunnelsResponse, error) {
	var tunnels ngrokTunnelsResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return tunnels, fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return tunnels, fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tunnels, fmt.Errorf("ngrok API returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return tunnels, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return tunnels, nil
}

// announceNgrokURL logs the webhook URLs to paste into the Dialogflow and
// Alexa consoles.
func announceNgrokURL(ctx context.Context, l log.Logger, apiURL string, alexaEnabled bool) {
	client := &http.Client{Timeout: 5 * time.Second}
	publicURL, err := detectNgrokURL(ctx, client, apiURL, ngrokRetryInterval)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return
	}

	l.Infof(ctx, "Dialogflow fulfillment URL: %s/webhook/dialogflow", publicURL)
	if alexaEnabled {
		l.Infof(ctx, "Alexa endpoint URL: %s/webhook/alexa", publicURL)
	}
}
