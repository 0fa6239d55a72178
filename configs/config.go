package configs

import (
	"fmt"
	"math"
)

// Constantes do jogo. Tudo que a simulação precisa vive aqui,
// nada muda depois do New().
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	PaddleSpeed  float64

	BallRadius float64

	// Velocidade da bola no saque, em pixels por frame de referência (60fps).
	BallSpeed float64

	WinningScore int

	// Ângulo máximo de rebote na raquete, em radianos.
	MaxBounceAngle float64

	// Abertura do ângulo de saque em torno da horizontal, em radianos.
	ServeAngleSpread float64

	// Ganho de velocidade aplicado em cada rebote de raquete.
	BounceSpeedup float64

	// Crescimento do multiplicador acumulado por rebote de raquete.
	MultiplierGrowth float64

	// Espera entre o ponto e o próximo saque, em frames de referência.
	ServeDelay float64

	// Teto do deltaTime aceito pelo Step. Evita atravessar raquete
	// quando o host engasga num frame.
	MaxDeltaTime float64

	AggressivenessMin float64
	AggressivenessMax float64
}

// Presets de agressividade do oponente expostos na interface.
const (
	AggressivenessEasy   = 0.08
	AggressivenessNormal = 0.12
	AggressivenessHard   = 0.18
)

func New() Config {
	return Config{
		ScreenWidth:  900,
		ScreenHeight: 540,

		PaddleWidth:  10,
		PaddleHeight: 100,
		PaddleMargin: 10,
		PaddleSpeed:  7.0,

		BallRadius: 9,
		BallSpeed:  5.0,

		WinningScore: 10,

		MaxBounceAngle:   math.Pi / 3, // 60 graus
		ServeAngleSpread: math.Pi / 8, // ±22.5 graus
		BounceSpeedup:    1.03,
		MultiplierGrowth: 1.01,

		ServeDelay:   18, // 300ms a 60fps
		MaxDeltaTime: 2.4,

		AggressivenessMin: 0.02,
		AggressivenessMax: 0.4,
	}
}

// Validate rejeita geometria que quebra a simulação.
func (c Config) Validate() error {
	if c.PaddleHeight >= c.ScreenHeight {
		return fmt.Errorf("config: paddle height %.0f must be smaller than screen height %.0f", c.PaddleHeight, c.ScreenHeight)
	}
	if c.BallRadius >= c.PaddleWidth {
		return fmt.Errorf("config: ball radius %.0f must be smaller than paddle width %.0f", c.BallRadius, c.PaddleWidth)
	}
	if c.WinningScore <= 0 {
		return fmt.Errorf("config: winning score must be positive, got %d", c.WinningScore)
	}
	if c.MaxDeltaTime <= 0 {
		return fmt.Errorf("config: max delta time must be positive, got %.2f", c.MaxDeltaTime)
	}
	return nil
}
