package game

// Snapshot é a cópia somente-leitura que o renderizador consome uma
// vez por frame. Sem aliasing com o estado vivo da simulação.
type Snapshot struct {
	LeftPaddleY  float64
	RightPaddleY float64

	BallX float64
	BallY float64

	LeftScore  int
	RightScore int

	Paused    bool
	Winner    Side
	TwoPlayer bool

	Aggressiveness float64

	Phase Phase
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		LeftPaddleY:    e.left.Y,
		RightPaddleY:   e.right.Y,
		BallX:          e.ball.X,
		BallY:          e.ball.Y,
		LeftScore:      e.match.LeftScore,
		RightScore:     e.match.RightScore,
		Paused:         e.match.Paused,
		Winner:         e.match.Winner,
		TwoPlayer:      e.match.TwoPlayer,
		Aggressiveness: e.match.Aggressiveness,
		Phase:          e.phase,
	}
}
