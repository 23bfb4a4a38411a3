package middleware

import (
	"context"
	"testing"
	"time"
)

func TestMemoryDeduperSeen(t *testing.T) {
	d := newMemoryRequestDeduper(time.Minute)
	ctx := context.Background()

	dup, err := d.Seen(ctx, "k1")
	if err != nil || dup {
		t.Fatalf("first Seen=(%v,%v), expected fresh key", dup, err)
	}

	dup, err = d.Seen(ctx, "k1")
	if err != nil || !dup {
		t.Fatalf("second Seen=(%v,%v), expected duplicate", dup, err)
	}

	dup, err = d.Seen(ctx, "k2")
	if err != nil || dup {
		t.Fatalf("different key Seen=(%v,%v), expected fresh", dup, err)
	}
}

func TestMemoryDeduperExpiry(t *testing.T) {
	d := newMemoryRequestDeduper(10 * time.Millisecond)
	ctx := context.Background()

	if dup, _ := d.Seen(ctx, "k"); dup {
		t.Fatal("expected fresh key")
	}

	time.Sleep(20 * time.Millisecond)

	if dup, _ := d.Seen(ctx, "k"); dup {
		t.Fatal("expected key to expire after the TTL")
	}
}

func TestNewRequestDeduperFallsBackWithoutRedis(t *testing.T) {
	d, err := NewRequestDeduper("", "", 0, time.Minute)
	if err != nil {
		t.Fatalf("NewRequestDeduper returned error: %v", err)
	}
	if _, ok := d.(*memoryRequestDeduper); !ok {
		t.Fatalf("expected in-memory deduper when no Redis address is set, got %T", d)
	}
}
