package game

// Phase é a fase do rally. Paused é ortogonal e fica no Match.
type Phase int

const (
	PhaseServing Phase = iota
	PhaseRallying
	PhaseMatchOver
)

// Match é o estado observável de fora: placar, pausa, vencedor, modo.
// Placar e vencedor só mudam pela transição de ponto do engine;
// o resto muda por comando externo.
type Match struct {
	LeftScore  int
	RightScore int

	Paused    bool
	Winner    Side
	TwoPlayer bool

	Aggressiveness float64
}

func NewMatch(aggressiveness float64) Match {
	return Match{Aggressiveness: aggressiveness}
}

func (m Match) Over() bool {
	return m.Winner != SideNone
}

// score registra o ponto e devolve true se fechou a partida.
func (m *Match) score(scorer Side, winningScore int) bool {
	switch scorer {
	case SideLeft:
		m.LeftScore++
		if m.LeftScore >= winningScore {
			m.Winner = SideLeft
		}
	case SideRight:
		m.RightScore++
		if m.RightScore >= winningScore {
			m.Winner = SideRight
		}
	}
	return m.Over()
}

func (m *Match) reset() {
	m.LeftScore = 0
	m.RightScore = 0
	m.Winner = SideNone
}
