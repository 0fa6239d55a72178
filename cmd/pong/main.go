package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wvoliveira/pong/configs"
	"github.com/wvoliveira/pong/game"
)

// Duração do frame de referência da simulação (60fps).
const referenceFrame = time.Second / 60

type Game struct {
	engine *game.Engine
	cfg    configs.Config
	last   time.Time
}

func (g *Game) Update() error {
	// Comandos discretos, disparados na borda da tecla.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.engine.SetTwoPlayer(!g.engine.Snapshot().TwoPlayer)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.engine.SetAggressiveness(configs.AggressivenessEasy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.engine.SetAggressiveness(configs.AggressivenessNormal)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		g.engine.SetAggressiveness(configs.AggressivenessHard)
	}

	// Controles player 1 (w/s) e player 2 (setas), travados enquanto
	// a tecla fica segurada.
	g.engine.SetMoveLeft(true, ebiten.IsKeyPressed(ebiten.KeyW))
	g.engine.SetMoveLeft(false, ebiten.IsKeyPressed(ebiten.KeyS))
	g.engine.SetMoveRight(true, ebiten.IsKeyPressed(ebiten.KeyArrowUp))
	g.engine.SetMoveRight(false, ebiten.IsKeyPressed(ebiten.KeyArrowDown))

	// Arrasto por mouse: a metade do campo onde o clique caiu decide
	// qual raquete o grip tenta pegar.
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		side := game.SideLeft
		if float64(mx) > g.cfg.ScreenWidth/2 {
			side = game.SideRight
		}
		g.engine.Grip(side, float64(my))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.engine.ReleaseGrip()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.engine.DragTo(float64(my))
	}

	// Tempo de parede normalizado para o frame de referência.
	// O teto fica por conta do engine.
	now := time.Now()
	dt := float64(now.Sub(g.last)) / float64(referenceFrame)
	g.last = now

	g.engine.Step(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Fundo cinza escuro
	screen.Fill(color.RGBA{0x20, 0x20, 0x30, 0xff})

	s := g.engine.Snapshot()

	w := float32(g.cfg.ScreenWidth)
	h := float32(g.cfg.ScreenHeight)
	pw := float32(g.cfg.PaddleWidth)
	ph := float32(g.cfg.PaddleHeight)
	margin := float32(g.cfg.PaddleMargin)
	r := float32(g.cfg.BallRadius)

	// Rede central tracejada
	for y := float32(0); y < h; y += 30 {
		vector.FillRect(screen, w/2-2, y, 4, 15, color.RGBA{0x50, 0x50, 0x60, 0xff}, false)
	}

	// Raquetes (brancas)
	vector.FillRect(screen, margin, float32(s.LeftPaddleY), pw, ph, color.White, false)
	vector.FillRect(screen, w-margin-pw, float32(s.RightPaddleY), pw, ph, color.White, false)

	// Bola (amarela)
	if s.Winner == game.SideNone {
		vector.FillRect(screen, float32(s.BallX)-r, float32(s.BallY)-r, 2*r, 2*r, color.RGBA{0xff, 0xd7, 0x00, 0xff}, false)
	}

	face := text.NewGoXFace(basicfont.Face7x13)

	// Placar no topo, centralizado
	score := fmt.Sprintf("%d   %d", s.LeftScore, s.RightScore)
	scoreOp := &text.DrawOptions{}
	scoreOp.GeoM.Translate(float64(w)/2-float64(len(score))*7/2, 10)
	text.Draw(screen, score, face, scoreOp)

	// Linha de ajuda
	mode := "vs CPU"
	if s.TwoPlayer {
		mode = "2P"
	}
	msg := fmt.Sprintf("P1: W/S  |  P2: Arrows  |  Space: pause  |  R: restart  |  T: %s  |  1/2/3: difficulty %.2f", mode, s.Aggressiveness)
	helpOp := &text.DrawOptions{}
	helpOp.GeoM.Translate(10, float64(h)-20)
	text.Draw(screen, msg, face, helpOp)

	if s.Paused {
		drawCentered(screen, face, "PAUSED", float64(w), float64(h)/2)
	} else if s.Phase == game.PhaseServing && s.Winner == game.SideNone {
		drawCentered(screen, face, "READY", float64(w), float64(h)/2-40)
	}
	if s.Winner != game.SideNone {
		banner := strings.ToUpper(s.Winner.String()) + " PLAYER WINS  -  press R to play again"
		drawCentered(screen, face, banner, float64(w), float64(h)/2)
	}
}

func drawCentered(screen *ebiten.Image, face text.Face, msg string, w, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(w/2-float64(len(msg))*7/2, y)
	text.Draw(screen, msg, face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

func main() {
	cfg := configs.New()

	engine, err := game.NewEngine(cfg)
	if err != nil {
		slog.Error("invalid game config", "error", err)
		os.Exit(1)
	}

	g := &Game{engine: engine, cfg: cfg, last: time.Now()}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Pong")

	slog.Info("starting game", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "winning_score", cfg.WinningScore)

	if err := ebiten.RunGame(g); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
