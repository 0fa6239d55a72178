package game

// OpponentDelta é o controle proporcional do oponente: persegue a bola
// com ganho fixo, sem previsão de trajetória. O termo do multiplicador
// faz ele acompanhar rallies longos, compensando em parte a rampa de
// velocidade da bola. De propósito imperfeito, dá pra vencer.
func OpponentDelta(ballY, paddleCenterY, aggressiveness, dt, multiplier float64) float64 {
	return (ballY - paddleCenterY) * aggressiveness * dt * (1 + multiplier*0.05)
}

// ClampAggressiveness prende o ganho na faixa aceita. Valor fora da
// faixa não é erro, é só um knob cosmético: corta em silêncio.
func ClampAggressiveness(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
