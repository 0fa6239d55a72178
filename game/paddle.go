package game

// Paddle guarda só a posição vertical da borda superior.
// A posição horizontal é fixa pela configuração.
type Paddle struct {
	Y      float64
	height float64
	maxY   float64
}

func NewPaddle(screenHeight, paddleHeight float64) Paddle {
	return Paddle{
		Y:      (screenHeight - paddleHeight) / 2,
		height: paddleHeight,
		maxY:   screenHeight - paddleHeight,
	}
}

// MoveBy desloca a raquete e prende dentro do campo.
func (p *Paddle) MoveBy(dy float64) {
	p.MoveTo(p.Y + dy)
}

// MoveTo posiciona a borda superior, presa dentro do campo.
func (p *Paddle) MoveTo(y float64) {
	if y < 0 {
		y = 0
	}
	if y > p.maxY {
		y = p.maxY
	}
	p.Y = y
}

func (p Paddle) CenterY() float64 {
	return p.Y + p.height/2
}

// ContainsY diz se um y cai dentro da face da raquete.
func (p Paddle) ContainsY(y float64) bool {
	return y >= p.Y && y <= p.Y+p.height
}
