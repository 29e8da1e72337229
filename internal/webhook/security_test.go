package webhook

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestValidateSecret(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr bool
	}{
		{"No secret configured", "", "", false},
		{"No secret configured ignores token", "", "anything", false},
		{"Matching token", "s3cret", "s3cret", false},
		{"Wrong token", "s3cret", "guess", true},
		{"Missing token", "s3cret", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{Secret: tt.secret})
			err := v.ValidateSecret(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSecret() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIPAddress(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		ip      string
		wantErr bool
	}{
		{
			name: "No allowlist",
			ip:   "203.0.113.9",
		},
		{
			name:    "Exact match",
			allowed: []string{"203.0.113.9"},
			ip:      "203.0.113.9",
		},
		{
			name:    "CIDR match",
			allowed: []string{"66.249.64.0/19"},
			ip:      "66.249.70.1",
		},
		{
			name:    "Not allowed",
			allowed: []string{"10.0.0.0/8"},
			ip:      "203.0.113.9",
			wantErr: true,
		},
		{
			name:    "Empty client IP",
			allowed: []string{"10.0.0.0/8"},
			ip:      "",
			wantErr: true,
		},
		{
			name:    "Malformed CIDR is skipped",
			allowed: []string{"not-a-cidr/99"},
			ip:      "203.0.113.9",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecurityValidator(SecurityConfig{AllowedIPs: tt.allowed})
			err := v.ValidateIPAddress(tt.ip)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIPAddress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Run("Rejects once the burst is spent", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 20}) // burst 2
		if err := v.CheckRateLimit("dialogflow"); err != nil {
			t.Fatalf("first request: %v", err)
		}
		if err := v.CheckRateLimit("dialogflow"); err != nil {
			t.Fatalf("second request: %v", err)
		}
		if err := v.CheckRateLimit("dialogflow"); err == nil {
			t.Fatal("third request should be rate limited")
		}
		// Separate bucket per source.
		if err := v.CheckRateLimit("alexa"); err != nil {
			t.Fatalf("other source: %v", err)
		}
	})

	t.Run("Low limits still allow one request", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 5})
		if err := v.CheckRateLimit("rest"); err != nil {
			t.Fatalf("first request: %v", err)
		}
		if err := v.CheckRateLimit("rest"); err == nil {
			t.Fatal("second request should be rate limited")
		}
	})

	t.Run("Concurrent first requests share one bucket", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 5}) // burst 1
		var allowed atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if v.CheckRateLimit("dialogflow") == nil {
					allowed.Add(1)
				}
			}()
		}
		wg.Wait()
		if got := allowed.Load(); got != 1 {
			t.Fatalf("allowed %d requests, want 1", got)
		}
	})

	t.Run("Zero disables limiting", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{})
		for i := 0; i < 100; i++ {
			if err := v.CheckRateLimit("rest"); err != nil {
				t.Fatalf("request %d: %v", i, err)
			}
		}
	})
}
