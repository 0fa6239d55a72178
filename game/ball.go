package game

import (
	"math"
	"math/rand"
)

// Ball carrega posição, velocidade e o multiplicador acumulado do rally.
// A velocidade em si não é reescalada pelo multiplicador; ele entra na
// hora da integração.
type Ball struct {
	X, Y       float64
	VX, VY     float64
	Multiplier float64
}

func NewBall(x, y float64) Ball {
	return Ball{X: x, Y: y, Multiplier: 1}
}

// Advance integra a posição pelo deltaTime já normalizado.
func (b *Ball) Advance(dt float64) {
	b.X += b.VX * b.Multiplier * dt
	b.Y += b.VY * b.Multiplier * dt
}

func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// BounceWalls prende a bola entre teto e chão invertendo a componente
// vertical. Elástico, sem perda de energia.
func (b *Ball) BounceWalls(screenHeight, radius float64) {
	if b.Y-radius < 0 {
		b.Y = radius
		b.VY = -b.VY
	}
	if b.Y+radius > screenHeight {
		b.Y = screenHeight - radius
		b.VY = -b.VY
	}
}

// BounceOffPaddle recalcula a velocidade a partir do ponto de impacto
// na raquete. relative vai de -1 (topo) a +1 (base); o ângulo de saída
// é proporcional a ele. toRight diz para que lado a bola sai.
func (b *Ball) BounceOffPaddle(paddleCenterY, paddleHeight, maxAngle, speedup float64, toRight bool) {
	relative := (b.Y - paddleCenterY) / (paddleHeight / 2)
	if relative < -1 {
		relative = -1
	}
	if relative > 1 {
		relative = 1
	}

	angle := relative * maxAngle
	speed := b.Speed() * speedup

	b.VX = speed * math.Cos(angle)
	if !toRight {
		b.VX = -b.VX
	}
	b.VY = speed * math.Sin(angle)
}

// Serve recoloca a bola no centro e lança na direção pedida com ângulo
// aleatório dentro do spread. Zera o multiplicador do rally.
func (b *Ball) Serve(centerX, centerY, speed, spread float64, toRight bool, rng *rand.Rand) {
	b.X = centerX
	b.Y = centerY
	b.Multiplier = 1

	angle := (rng.Float64()*2 - 1) * spread
	b.VX = speed * math.Cos(angle)
	if !toRight {
		b.VX = -b.VX
	}
	b.VY = speed * math.Sin(angle)
}
