package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"growling-tummy/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "UTC",
			in:   time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
			want: `"2024-05-01T15:30:00Z"`,
		},
		{
			name: "Offset is converted to UTC",
			in:   time.Date(2025, 2, 21, 14, 0, 0, 0, time.FixedZone("PST", -8*60*60)),
			want: `"2025-02-21T22:00:00Z"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling DateTime: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", b, tt.want)
			}
		})
	}
}
