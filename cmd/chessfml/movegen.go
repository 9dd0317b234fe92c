package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/chessfml/board"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b, st, err := board.NewGame(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", st.Turn)
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(board.Evaluate(b, st))
	mvs := board.AllLegalMoves(b, st)
	dumpMoves(b, mvs)

	if draw {
		for _, mv := range mvs {
			nb, nst := board.ApplyMove(*b, *st, mv)
			fmt.Println(mv)
			fmt.Println(nb.Draw(mv.From, mv.To))
			fmt.Println(board.CreateFEN(&nb, &nst))
		}
	}
	return nil
}

func dumpMoves(b *board.Board, mvs []board.Move) {
	for i, mv := range mvs {
		p := b[mv.From]
		fmt.Printf("option %*d: [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), p.Side, p.Type.Name(), mv.From, mv.To,
			mv.IsCapture(), mv.IsEnPassant(), mv.IsCastling(), mv.Promotion.Name())
	}
}
