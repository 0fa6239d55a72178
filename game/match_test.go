package game

import "testing"

func TestMatch_ScoreAndWin(t *testing.T) {
	m := NewMatch(0.12)

	for i := 0; i < 9; i++ {
		if over := m.score(SideLeft, 10); over {
			t.Fatalf("match over at %d points", m.LeftScore)
		}
	}
	if m.LeftScore != 9 || m.Winner != SideNone {
		t.Fatalf("score = %d, winner = %v", m.LeftScore, m.Winner)
	}

	if over := m.score(SideLeft, 10); !over {
		t.Fatal("expected match over at 10 points")
	}
	if m.Winner != SideLeft {
		t.Errorf("winner = %v, want left", m.Winner)
	}
}

func TestMatch_ResetKeepsModeAndDifficulty(t *testing.T) {
	m := NewMatch(0.18)
	m.TwoPlayer = true
	m.score(SideRight, 10)

	m.reset()

	if m.LeftScore != 0 || m.RightScore != 0 || m.Winner != SideNone {
		t.Errorf("reset left %d/%d winner %v", m.LeftScore, m.RightScore, m.Winner)
	}
	if !m.TwoPlayer || m.Aggressiveness != 0.18 {
		t.Error("reset should not touch mode or difficulty")
	}
}

func TestSide_String(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" || SideNone.String() != "none" {
		t.Error("unexpected side names")
	}
}
