package main

import (
	"errors"
	"testing"

	"github.com/daystram/chessfml/board"
)

func TestModes(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "movegen",
			run:  func() error { return movegen(board.DefaultStartingPositionFEN, true) },
		},
		{
			name:    "movegen invalid fen",
			run:     func() error { return movegen("8/8/8 w", false) },
			wantErr: board.ErrInvalidFEN,
		},
		{
			name: "step",
			run:  func() error { return step(board.DefaultStartingPositionFEN, 7, 4) },
		},
		{
			name: "step from checkmate",
			run:  func() error { return step("R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", 1, 10) },
		},
		{
			name: "perft",
			run:  func() error { return perft(2, board.DefaultStartingPositionFEN, true) },
		},
		{
			name:    "perft invalid fen",
			run:     func() error { return perft(1, "rnbqkbnr w", false) },
			wantErr: board.ErrInvalidFEN,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.wantErr == nil && err != nil {
				t.Fatal("unexpected error:", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}
