package model

import (
	"fmt"
	"sync"
	"time"
)

type QueuedPlayer struct {
	Player   Player
	JoinedAt time.Time
}

// Queue holds players waiting for an opponent, oldest first.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(player Player) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.Player.ID == player.ID {
			return fmt.Errorf("player %s already in queue", player.ID)
		}
	}

	q.players = append(q.players, QueuedPlayer{
		Player:   player,
		JoinedAt: time.Now(),
	})
	return nil
}

// GetNextPair pops the two players who have waited longest. ok is false when
// fewer than two are queued.
func (q *Queue) GetNextPair() (Player, Player, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return Player{}, Player{}, false
	}
	player1 := q.players[0].Player
	player2 := q.players[1].Player
	q.players = q.players[2:]
	return player1, player2, true
}

func (q *Queue) Contains(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.Player.ID == playerID {
			return true
		}
	}
	return false
}

// WaitTime reports how long playerID has been queued as of now.
func (q *Queue) WaitTime(playerID string, now time.Time) (time.Duration, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.Player.ID == playerID {
			return now.Sub(p.JoinedAt), true
		}
	}
	return 0, false
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
