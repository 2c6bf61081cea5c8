package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		authorization string
		wantErr       bool
	}{
		{name: "exact match", secret: "tok-123", authorization: "Bearer tok-123", wantErr: false},
		{name: "wrong token", secret: "tok-123", authorization: "Bearer wrong", wantErr: true},
		{name: "missing header", secret: "tok-123", authorization: "", wantErr: true},
		{name: "wrong scheme", secret: "tok-123", authorization: "Basic tok-123", wantErr: true},
		{name: "bearer with empty token", secret: "tok-123", authorization: "Bearer ", wantErr: true},
		{name: "token is substring of secret", secret: "tok-123", authorization: "Bearer tok-12", wantErr: true},
		{name: "secret is substring of token", secret: "tok-123", authorization: "Bearer tok-1234", wantErr: true},
		{name: "case sensitive", secret: "tok-123", authorization: "Bearer TOK-123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.secret).Authenticate(tt.authorization)
			if tt.wantErr {
				if !errors.Is(err, ErrUnauthorized) {
					t.Fatalf("expected ErrUnauthorized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
		})
	}
}

func TestAuthenticateFailsClosedWithoutSecret(t *testing.T) {
	a := New("")
	for _, header := range []string{"", "Bearer ", "Bearer anything"} {
		if err := a.Authenticate(header); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("header %q: expected ErrUnauthorized with empty secret, got %v", header, err)
		}
	}
}

func TestErrUnauthorizedNeverEchoesToken(t *testing.T) {
	err := New("tok-123").Authenticate("Bearer leaked-token")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, secret := range []string{"leaked-token", "tok-123"} {
		if strings.Contains(msg, secret) {
			t.Fatalf("error message %q leaks %q", msg, secret)
		}
	}
}
