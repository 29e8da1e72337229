package main

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestReadPassword(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"hunter2\n", "hunter2", false},
		{"hunter2\r\nextra\n", "hunter2", false},
		{"no newline", "no newline", false},
		{"\n", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := readPassword(strings.NewReader(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("readPassword(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("readPassword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashPassword() error = %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")); err != nil {
		t.Errorf("hash does not match: %v", err)
	}

	if _, err := hashPassword("hunter2", bcrypt.MaxCost+1); err == nil {
		t.Error("expected error for out-of-range cost")
	}
}
