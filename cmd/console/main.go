package main

import (
	"flag"
	"log"
	"os"

	"github.com/benbeisheim/consolechess/internal/console"
	"github.com/benbeisheim/consolechess/internal/model"
)

func main() {
	fen := flag.String("fen", getenv("CHESS_FEN", ""), "start from this FEN position instead of the standard setup")
	flag.Parse()

	board := model.NewBoard()
	if *fen != "" {
		b, err := model.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("fen: %v", err)
		}
		board = b
	}

	if err := console.NewSession(board, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
