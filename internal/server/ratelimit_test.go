package server

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	a := httptest.NewRequest("GET", "/", nil)
	a.RemoteAddr = "10.0.0.1:1234"
	b := httptest.NewRequest("GET", "/", nil)
	b.RemoteAddr = "10.0.0.2:1234"

	if !rl.Allow(a) {
		t.Fatal("first request from a should pass")
	}
	if rl.Allow(a) {
		t.Error("second request from a should be limited")
	}
	if !rl.Allow(b) {
		t.Error("b has its own bucket")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	req := httptest.NewRequest("GET", "/", nil)
	for i := 0; i < 100; i++ {
		if !rl.Allow(req) {
			t.Fatalf("request %d limited with limiting disabled", i)
		}
	}
}

func TestRateLimiterEvict(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	req := httptest.NewRequest("GET", "/", nil)
	rl.Allow(req)

	rl.evict(time.Now())
	if len(rl.visitors) != 1 {
		t.Fatal("fresh visitor evicted")
	}
	rl.evict(time.Now().Add(visitorTTL + time.Second))
	if len(rl.visitors) != 0 {
		t.Error("idle visitor kept")
	}
}

func TestRateLimiterRunStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	rl := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	<-done
}

func TestClientIP(t *testing.T) {
	tests := map[string]string{
		"192.168.1.5:8080": "192.168.1.5",
		"[::1]:8080":       "::1",
		"203.0.113.9":      "203.0.113.9",
		"[2001:db8::1]":    "2001:db8::1",
	}
	for addr, want := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = addr
		if got := clientIP(req); got != want {
			t.Errorf("clientIP(%q) = %q, want %q", addr, got, want)
		}
	}
}
