package main

import (
	"context"
	"log"

	"github.com/birostris/PadelRanking/internal/config"
	"github.com/birostris/PadelRanking/pkg/padelapi"
)

// loadFixtures pushes a small roster and a few games to the rating
// backend so a fresh dev setup has something to display.
func loadFixtures() error {
	conf, err := config.NewFromUserConfigDir()
	if err != nil {
		return err
	}

	api, err := padelapi.New(conf.UpstreamURL)
	if err != nil {
		return err
	}

	ctx := context.Background()

	players := [][3]string{
		{"Nadia", "Svensson", "nadia"},
		{"Erik", "Lund", "erik"},
		{"Maya", "Berg", "maya"},
		{"Jonas", "Ek", "jonas"},
	}
	for _, v := range players {
		msg, err := api.AddPlayer(ctx, v[0], v[1], v[2])
		if err != nil {
			return err
		}
		log.Printf("info: %s", msg)
	}

	games := []padelapi.GameSubmission{
		{Player1: 1, Player2: 2, Player3: 3, Player4: 4, Score1: 6, Score2: 4},
		{Player1: 1, Player2: 3, Player3: 2, Player4: 4, Score1: 11, Score2: 9, Americano: 1},
		{Player1: 1, Player3: 2, Score1: 6, Score2: 2},
	}
	for _, v := range games {
		msg, err := api.AddGame(ctx, v)
		if err != nil {
			return err
		}
		log.Printf("info: %s", msg)
	}

	return nil
}
