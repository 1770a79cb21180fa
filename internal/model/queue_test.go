package model

import (
	"testing"
	"time"
)

func TestQueue(t *testing.T) {
	q := NewQueue()
	if _, _, ok := q.GetNextPair(); ok {
		t.Fatalf("empty queue produced a pair")
	}

	for _, id := range []string{"alice", "bob", "carol"} {
		if err := q.AddPlayer(Player{ID: id}); err != nil {
			t.Fatalf("AddPlayer(%s): %v", id, err)
		}
	}
	if err := q.AddPlayer(Player{ID: "bob"}); err == nil {
		t.Fatalf("duplicate player accepted")
	}
	if q.Size() != 3 || !q.Contains("carol") {
		t.Fatalf("size=%d contains(carol)=%v", q.Size(), q.Contains("carol"))
	}

	p1, p2, ok := q.GetNextPair()
	if !ok || p1.ID != "alice" || p2.ID != "bob" {
		t.Fatalf("GetNextPair = %s, %s, %v", p1.ID, p2.ID, ok)
	}
	if _, _, ok := q.GetNextPair(); ok {
		t.Fatalf("pair from a single waiting player")
	}
	if q.Size() != 1 || q.Contains("alice") {
		t.Fatalf("queue after pairing: size=%d", q.Size())
	}
}

func TestQueueWaitTime(t *testing.T) {
	q := NewQueue()
	if _, ok := q.WaitTime("alice", time.Now()); ok {
		t.Fatalf("wait time for a player not in the queue")
	}
	if err := q.AddPlayer(Player{ID: "alice"}); err != nil {
		t.Fatal(err)
	}
	later := time.Now().Add(90 * time.Second)
	wait, ok := q.WaitTime("alice", later)
	if !ok || wait < 90*time.Second || wait > 91*time.Second {
		t.Fatalf("WaitTime = %s, %v, want about 90s", wait, ok)
	}
}
