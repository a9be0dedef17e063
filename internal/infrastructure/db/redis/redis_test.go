package redis

import (
	"context"
	"testing"

	"github.com/taskforge/task-api/internal/infrastructure/config"
)

func TestOptions_MapsAppConfig(t *testing.T) {
	opts := options(config.RedisConfig{Addr: "cache:6380", DB: 3})

	if opts.Addr != "cache:6380" {
		t.Fatalf("addr: got %q, want %q", opts.Addr, "cache:6380")
	}
	if opts.DB != 3 {
		t.Fatalf("db: got %d, want 3", opts.DB)
	}
}

func TestConnect_FailsOnUnreachableAddress(t *testing.T) {
	// Port 1 is never listening; the ping must fail at connect time rather
	// than deferring the error to the first limiter call.
	client, err := Connect(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	if err == nil {
		client.Close()
		t.Fatalf("expected connect to fail")
	}
}
