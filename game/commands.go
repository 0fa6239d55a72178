package game

// Superfície de comandos. Cada comando é uma mutação discreta de
// Input ou Match; nenhum deles simula nada, tudo é consumido pelo
// próximo Step.

// TogglePause liga/desliga a pausa. Dois toggles seguidos voltam ao
// estado original sem mexer em bola, raquete ou placar.
func (e *Engine) TogglePause() {
	e.match.Paused = !e.match.Paused
}

// Restart zera placar e vencedor, centraliza as raquetes e arma um
// saque novo. Invalida qualquer saque pendente da partida anterior.
func (e *Engine) Restart() {
	e.serveGen++
	e.match.reset()
	e.left = NewPaddle(e.cfg.ScreenHeight, e.cfg.PaddleHeight)
	e.right = NewPaddle(e.cfg.ScreenHeight, e.cfg.PaddleHeight)
	e.scheduleServe(SideLeft)
}

// SetTwoPlayer troca o dono da raquete direita. Ao voltar para o modo
// contra a máquina, solta qualquer input humano pendurado nela.
func (e *Engine) SetTwoPlayer(on bool) {
	e.match.TwoPlayer = on
	if !on {
		e.input.RightUp = false
		e.input.RightDown = false
		if e.input.Drag.Side == SideRight {
			e.input.ReleaseDrag()
		}
	}
}

// SetAggressiveness ajusta o ganho do oponente, cortado na faixa
// válida. Valor fora da faixa não é erro.
func (e *Engine) SetAggressiveness(v float64) {
	e.match.Aggressiveness = ClampAggressiveness(v, e.cfg.AggressivenessMin, e.cfg.AggressivenessMax)
}

// SetMoveLeft trava/destrava o movimento da raquete esquerda.
func (e *Engine) SetMoveLeft(up, active bool) {
	if up {
		e.input.LeftUp = active
	} else {
		e.input.LeftDown = active
	}
}

// SetMoveRight trava/destrava a raquete direita. Só vale em modo de
// dois jogadores; fora dele o oponente é dono da raquete.
func (e *Engine) SetMoveRight(up, active bool) {
	if !e.match.TwoPlayer {
		return
	}
	if up {
		e.input.RightUp = active
	} else {
		e.input.RightDown = active
	}
}

// Grip começa um arrasto na raquete do lado dado, se o ponteiro está
// sobre ela. Lado direito só em modo de dois jogadores.
func (e *Engine) Grip(side Side, pointerY float64) {
	if side == SideRight && !e.match.TwoPlayer {
		return
	}

	var p *Paddle
	switch side {
	case SideLeft:
		p = &e.left
	case SideRight:
		p = &e.right
	default:
		return
	}
	if !p.ContainsY(pointerY) {
		return
	}

	e.input.Drag = DragSession{
		Side:     side,
		Offset:   pointerY - p.Y,
		PointerY: pointerY,
	}
}

// DragTo atualiza o alvo do arrasto. A raquete segue no próximo tick.
func (e *Engine) DragTo(pointerY float64) {
	if !e.input.Drag.Active() {
		return
	}
	e.input.Drag.PointerY = pointerY
}

// ReleaseGrip encerra o arrasto. Vale também para perda de captura.
func (e *Engine) ReleaseGrip() {
	e.input.ReleaseDrag()
}
