package notion

import (
	"errors"
	"testing"
	"time"
)

func TestTTLCacheGetSet(t *testing.T) {
	c := NewTTLCache(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("Get(missing) = hit, want miss")
	}

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("Get(k) = %v, %v, want v, true", got, ok)
	}
}

func TestTTLCacheExpires(t *testing.T) {
	c := NewTTLCache(50 * time.Millisecond)
	c.Set("k", "v")

	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Errorf("Get(k) = hit after expiry, want miss")
	}
}

func TestCachedComputesOnceWithinTTL(t *testing.T) {
	c := NewTTLCache(time.Minute)
	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := cached(c, "list", fn)
		if err != nil {
			t.Fatalf("cached: %v", err)
		}
		if len(got) != 1 || got[0] != "a" {
			t.Fatalf("cached = %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	c := NewTTLCache(time.Minute)
	calls := 0
	fail := errors.New("upstream down")
	fn := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, fail
		}
		return 42, nil
	}

	if _, err := cached(c, "n", fn); !errors.Is(err, fail) {
		t.Fatalf("err = %v, want upstream error", err)
	}
	got, err := cached(c, "n", fn)
	if err != nil || got != 42 {
		t.Errorf("cached = %d, %v, want 42, nil", got, err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
