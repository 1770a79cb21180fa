package model

type Player struct {
	ID string
}

type ClientPlayer struct {
	ID    string `json:"name"`
	Color Color  `json:"color"`
}

type Players struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// seat returns the color playerID sits on, if any.
func (p Players) seat(playerID string) (Color, bool) {
	if playerID == "" {
		return "", false
	}
	if p.White.ID == playerID {
		return White, true
	}
	if p.Black.ID == playerID {
		return Black, true
	}
	return "", false
}

type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  Color  `json:"color"`
}
