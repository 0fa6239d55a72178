package game

import (
	"math/rand"
	"time"

	"github.com/wvoliveira/pong/configs"
)

// Engine é o dono exclusivo do estado mutável da simulação. Comandos
// externos só marcam intenção (input, pausa, modo); toda a física
// acontece dentro do Step, um tick por frame.
type Engine struct {
	cfg configs.Config

	left  Paddle
	right Paddle
	ball  Ball
	match Match
	input Input

	phase Phase

	// Saque adiado: contagem regressiva em frames de referência,
	// protegida por geração. Restart invalida saque pendente.
	serveCountdown float64
	serveToward    Side
	serveGen       uint64
	pendingGen     uint64

	rng *rand.Rand
}

func NewEngine(cfg configs.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		left:  NewPaddle(cfg.ScreenHeight, cfg.PaddleHeight),
		right: NewPaddle(cfg.ScreenHeight, cfg.PaddleHeight),
		ball:  NewBall(cfg.ScreenWidth/2, cfg.ScreenHeight/2),
		match: NewMatch(configs.AggressivenessNormal),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.scheduleServe(SideLeft)
	return e, nil
}

// Step avança a simulação um tick. dt vem normalizado para o frame de
// referência de 60fps e é cortado no teto da configuração.
func (e *Engine) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > e.cfg.MaxDeltaTime {
		dt = e.cfg.MaxDeltaTime
	}
	if e.match.Paused || e.phase == PhaseMatchOver {
		return
	}

	e.movePaddles(dt)

	switch e.phase {
	case PhaseServing:
		e.serveCountdown -= dt
		if e.serveCountdown <= 0 {
			e.fireServe()
		}
	case PhaseRallying:
		e.stepBall(dt)
	}
}

func (e *Engine) movePaddles(dt float64) {
	step := e.cfg.PaddleSpeed * dt

	if e.input.LeftUp {
		e.left.MoveBy(-step)
	}
	if e.input.LeftDown {
		e.left.MoveBy(step)
	}

	if e.match.TwoPlayer {
		if e.input.RightUp {
			e.right.MoveBy(-step)
		}
		if e.input.RightDown {
			e.right.MoveBy(step)
		}
	} else {
		e.right.MoveBy(OpponentDelta(e.ball.Y, e.right.CenterY(), e.match.Aggressiveness, dt, e.ball.Multiplier))
	}

	// Arrasto por ponteiro ganha das teclas para a raquete segurada.
	if drag := e.input.Drag; drag.Active() {
		target := drag.PointerY - drag.Offset
		switch drag.Side {
		case SideLeft:
			e.left.MoveTo(target)
		case SideRight:
			e.right.MoveTo(target)
		}
	}
}

func (e *Engine) stepBall(dt float64) {
	e.ball.Advance(dt)

	// Parede antes da raquete. Num canto os dois podem valer no mesmo
	// tick e a resposta da raquete sobrescreve a inversão da parede.
	e.ball.BounceWalls(e.cfg.ScreenHeight, e.cfg.BallRadius)

	e.collideLeftPaddle()
	e.collideRightPaddle()

	e.checkScore()
}

func (e *Engine) collideLeftPaddle() {
	front := e.cfg.PaddleMargin + e.cfg.PaddleWidth
	leading := e.ball.X - e.cfg.BallRadius

	if e.ball.VX >= 0 || leading > front || leading < e.cfg.PaddleMargin {
		return
	}
	if !e.left.ContainsY(e.ball.Y) {
		return
	}

	// Encosta na face antes de rebater, senão a bola gruda.
	e.ball.X = front + e.cfg.BallRadius
	e.ball.BounceOffPaddle(e.left.CenterY(), e.cfg.PaddleHeight, e.cfg.MaxBounceAngle, e.cfg.BounceSpeedup, true)
	e.ball.Multiplier *= e.cfg.MultiplierGrowth
}

func (e *Engine) collideRightPaddle() {
	front := e.cfg.ScreenWidth - e.cfg.PaddleMargin - e.cfg.PaddleWidth
	leading := e.ball.X + e.cfg.BallRadius

	if e.ball.VX <= 0 || leading < front || leading > front+e.cfg.PaddleWidth {
		return
	}
	if !e.right.ContainsY(e.ball.Y) {
		return
	}

	e.ball.X = front - e.cfg.BallRadius
	e.ball.BounceOffPaddle(e.right.CenterY(), e.cfg.PaddleHeight, e.cfg.MaxBounceAngle, e.cfg.BounceSpeedup, false)
	e.ball.Multiplier *= e.cfg.MultiplierGrowth
}

func (e *Engine) checkScore() {
	switch {
	case e.ball.X+e.cfg.BallRadius < 0:
		e.pointScored(SideRight)
	case e.ball.X-e.cfg.BallRadius > e.cfg.ScreenWidth:
		e.pointScored(SideLeft)
	}
}

func (e *Engine) pointScored(scorer Side) {
	if e.match.score(scorer, e.cfg.WinningScore) {
		e.phase = PhaseMatchOver
		e.serveGen++ // mata qualquer saque pendente
		return
	}

	// Quem perdeu o ponto recebe o saque.
	loser := SideLeft
	if scorer == SideLeft {
		loser = SideRight
	}
	e.scheduleServe(loser)
}

// scheduleServe centraliza a bola parada e arma a contagem do saque.
func (e *Engine) scheduleServe(toward Side) {
	e.ball = NewBall(e.cfg.ScreenWidth/2, e.cfg.ScreenHeight/2)
	e.phase = PhaseServing
	e.serveCountdown = e.cfg.ServeDelay
	e.serveToward = toward
	e.pendingGen = e.serveGen
}

func (e *Engine) fireServe() {
	// Saque de uma geração anterior é descartado, nunca ressuscita
	// partida encerrada ou reiniciada.
	if e.pendingGen != e.serveGen || e.match.Over() {
		return
	}
	e.ball.Serve(e.cfg.ScreenWidth/2, e.cfg.ScreenHeight/2, e.cfg.BallSpeed,
		e.cfg.ServeAngleSpread, e.serveToward == SideRight, e.rng)
	e.phase = PhaseRallying
}
