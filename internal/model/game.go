package model

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/benbeisheim/consolechess/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a Game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// LockedConn serializes writes to a Conn. A websocket connection allows one
// writer at a time.
type LockedConn struct {
	conn Conn
	mu   sync.Mutex
}

func NewLockedConn(conn Conn) *LockedConn {
	if lc, ok := conn.(*LockedConn); ok {
		return lc
	}
	return &LockedConn{conn: conn}
}

func (c *LockedConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *LockedConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *LockedConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]*LockedConn // playerID -> connection
	mu          sync.RWMutex
	// broadcastMu orders broadcasts so a client never sees an older state
	// after a newer one.
	broadcastMu sync.Mutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*LockedConn),
	}
}

// Game owns one Board and serializes every access to it.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	players     Players
	lastMove    *Move
	sound       string
	connections *GameConnections
}

type GameState struct {
	ID         string     `json:"id"`
	Sound      string     `json:"sound"`
	Board      BoardState `json:"boardState"`
	ToMove     Color      `json:"toMove"`
	Winner     *Color     `json:"winner"`
	PieceCount int        `json:"pieceCount"`
	Players    Players    `json:"players"`
	LastMove   *Move      `json:"lastMove"`
	Rendered   string     `json:"rendered"`
}

func NewGame(id string) *Game {
	return NewGameFromBoard(id, NewBoard())
}

func NewGameFromBoard(id string, board *Board) *Game {
	return &Game{
		ID:          id,
		board:       board,
		connections: NewGameConnections(),
	}
}

// AddPlayer seats playerID on the first free color. A player already seated
// gets their existing color back.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if color, ok := g.players.seat(playerID); ok {
		return color, nil
	}
	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{ID: playerID, Color: White}
		return White, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{ID: playerID, Color: Black}
		return Black, nil
	}
	return "", ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	snapshot := g.board.Snapshot()
	state := GameState{
		ID:         g.ID,
		Sound:      g.sound,
		Board:      snapshot,
		ToMove:     snapshot.ToMove,
		Winner:     snapshot.Winner,
		PieceCount: g.board.PieceCount(),
		Players:    g.players,
		Rendered:   g.board.Render(),
	}
	if g.lastMove != nil {
		lm := *g.lastMove
		state.LastMove = &lm
	}
	return state
}

func (g *Game) Render() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Render()
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.players.seat(playerID)
	return ok
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

// MakeMove plays move for playerID, who must hold the seat of the side to move.
func (g *Game) MakeMove(playerID string, move Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, over := g.board.Winner(); over {
		return ErrGameOver
	}
	color, ok := g.players.seat(playerID)
	if !ok {
		return ErrNotInGame
	}
	if color != g.board.Turn() {
		return ErrNotYourTurn
	}

	_, capture := g.board.At(move.To)
	if err := g.board.Play(move); err != nil {
		return fmt.Errorf("%s: %w", move, err)
	}

	if capture {
		g.sound = "capture"
	} else {
		g.sound = "move"
	}
	g.lastMove = &move
	log.Printf("game %s: %s played %s", g.ID, color, move)

	go g.broadcastState()
	return nil
}

// Resign ends the game in favor of playerID's opponent.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, over := g.board.Winner(); over {
		return ErrGameOver
	}
	color, ok := g.players.seat(playerID)
	if !ok {
		return ErrNotInGame
	}
	g.board.SetWinner(color.Opponent())
	g.sound = ""
	log.Printf("game %s: %s resigned", g.ID, color)

	go g.broadcastState()
	return nil
}

// RegisterConnection adds conn as playerID's live connection. Callers that
// also write to conn must pass a LockedConn and write through it.
func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.mu.Lock()
	_, seated := g.players.seat(playerID)
	isAuthorized := seated || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return fmt.Errorf("not authorized to join game %s", g.ID)
	}

	lc := NewLockedConn(conn)
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the existing connection and reject the new one.
		g.connections.mu.Unlock()
		lc.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		lc.Close()
		return nil
	}
	g.connections.connections[playerID] = lc
	g.connections.mu.Unlock()
	log.Printf("game %s: registered connection for player %s", g.ID, playerID)

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[playerID]; exists {
		log.Printf("game %s: unregistering connection for player %s", g.ID, playerID)
		delete(g.connections.connections, playerID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// broadcastState sends the current state to every connection. Connections
// that fail a write are dropped. The state is read after taking broadcastMu,
// so each broadcast carries a state at least as new as the one before it.
func (g *Game) broadcastState() {
	g.connections.broadcastMu.Lock()
	defer g.connections.broadcastMu.Unlock()

	payload, err := json.Marshal(g.GetState())
	if err != nil {
		log.Printf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	g.connections.mu.RLock()
	active := make(map[string]*LockedConn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Printf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			g.connections.mu.Lock()
			if g.connections.connections[playerID] == conn {
				delete(g.connections.connections, playerID)
			}
			g.connections.mu.Unlock()
		}
	}
}
