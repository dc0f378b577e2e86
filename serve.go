package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/birostris/PadelRanking/internal/board"
	"github.com/birostris/PadelRanking/internal/config"
	"github.com/birostris/PadelRanking/internal/web"
	"github.com/birostris/PadelRanking/pkg/padelapi"
)

const syncInterval = 5 * time.Minute

func serve() error {
	conf, err := config.NewFromUserConfigDir()
	if err != nil {
		return err
	}

	api, err := padelapi.New(conf.UpstreamURL)
	if err != nil {
		return err
	}

	b, err := board.New(api, conf.CacheDSN)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := b.RestoreFromCache(ctx); err != nil {
		log.Printf("warning: unable to restore cached snapshots: %s", err)
	}

	if err := b.SyncAll(ctx); err != nil {
		// Whatever came out of the cache stays on display until the
		// backend is reachable again.
		log.Printf("warning: initial sync failed: %s", err)
	}

	server, err := web.NewServer(b, conf, ".")
	if err != nil {
		return err
	}

	done := make(chan struct{})
	signaled := make(chan os.Signal, 1)
	signal.Notify(signaled, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	go server.Serve(&wg, done)
	go syncLoop(&wg, done, b)

	sig := <-signaled
	log.Printf("received signal %d", sig)
	close(done)
	wg.Wait()

	log.Print("shutdown complete")

	return nil
}

func syncLoop(wg *sync.WaitGroup, done <-chan struct{}, b *board.Board) {
	wg.Add(1)
	defer wg.Done()

	ticker := time.NewTicker(syncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := b.SyncAll(ctx); err != nil {
				log.Printf("warning: periodic sync failed: %s", err)
			}
			cancel()
		case <-done:
			return
		}
	}
}
