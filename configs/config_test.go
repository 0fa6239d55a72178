package configs

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"paddle taller than screen", func(c *Config) { c.PaddleHeight = c.ScreenHeight }, true},
		{"ball wider than paddle", func(c *Config) { c.BallRadius = c.PaddleWidth }, true},
		{"zero winning score", func(c *Config) { c.WinningScore = 0 }, true},
		{"zero delta cap", func(c *Config) { c.MaxDeltaTime = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
