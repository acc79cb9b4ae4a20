package game

// Game binds a history to the identifier the view layer addresses it by.
type Game struct {
	ID      string
	History *History
}

func NewGame(id string, opts ...Option) *Game {
	return &Game{
		ID:      id,
		History: NewHistory(opts...),
	}
}
