package cache

import (
	"testing"
	"time"

	"datenight/internal/model"
)

func sample(id string) []model.Event {
	return []model.Event{{ID: id, Title: "Jazz Night", Venue: "Blue Note", TotalShowCount: 1}}
}

func TestPutGetWithinTTL(t *testing.T) {
	c := New(time.Minute)
	c.Put("featured_25", sample("tm_1"))

	got, ok := c.Get("featured_25")
	if !ok {
		t.Fatalf("expected hit inside TTL")
	}
	if len(got) != 1 || got[0].ID != "tm_1" {
		t.Fatalf("got %v", got)
	}
}

func TestMissAfterTTL(t *testing.T) {
	c := New(20 * time.Millisecond)
	c.Put("tonight", sample("tm_1"))

	time.Sleep(50 * time.Millisecond)

	if _, ok := c.Get("tonight"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestKeysAreIsolated(t *testing.T) {
	c := New(time.Minute)
	c.Put("featured_25", sample("tm_1"))
	c.Put("featured_50", sample("tm_2"))

	got, ok := c.Get("featured_50")
	if !ok || got[0].ID != "tm_2" {
		t.Fatalf("got %v, ok=%v", got, ok)
	}
	if _, ok := c.Get("cat_Comedy"); ok {
		t.Fatalf("unknown key should miss")
	}
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.Put("featured_25", sample("tm_1"))
	c.Put("tonight", sample("tm_2"))

	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("Len = %d after Clear", c.Len())
	}
	if _, ok := c.Get("featured_25"); ok {
		t.Fatalf("entry survived Clear")
	}
}

func TestNonPositiveTTLFallsBack(t *testing.T) {
	c := New(0)
	c.Put("featured_25", sample("tm_1"))
	if _, ok := c.Get("featured_25"); !ok {
		t.Fatalf("entry should be live under the default TTL")
	}
}
