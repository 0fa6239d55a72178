package game

// Side identifica uma das raquetes.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Input é o estado travado das teclas seguradas mais a sessão de
// arrasto. Handlers de evento só escrevem aqui; o Step lê no começo
// do próximo tick, nunca no meio.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool

	Drag DragSession
}

// DragSession é o estado do arrasto por ponteiro. O lado vem no
// comando de grip, nada de adivinhar pela última posição do mouse.
// Os comandos só atualizam PointerY; a raquete segue no próximo tick.
type DragSession struct {
	Side Side
	// Distância entre o ponteiro e a borda superior da raquete no
	// momento do grip, para a raquete não "pular" até o ponteiro.
	Offset   float64
	PointerY float64
}

func (d DragSession) Active() bool {
	return d.Side != SideNone
}

func (i *Input) ReleaseDrag() {
	i.Drag = DragSession{}
}
