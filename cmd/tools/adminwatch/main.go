// Command adminwatch lists recent chat sessions through the admin read
// API and then follows the admin live feed, printing each new-order
// notification as it arrives.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	adminClient "github.com/huynh044/ChatBot-BookStore/internal/admin"
	"github.com/huynh044/ChatBot-BookStore/internal/api"
	"github.com/huynh044/ChatBot-BookStore/internal/client"
	"github.com/huynh044/ChatBot-BookStore/internal/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	q := flag.String("q", "", "filter the session list by id substring")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiClient := api.New(cfg.Client.BaseURL)
	items, err := apiClient.ListSessions(ctx, *q)
	if err != nil {
		log.Printf("warning: failed to list sessions: %v", err)
	}
	for _, it := range items {
		log.Printf("session %s: %d tin nhắn, last %s", it.SessionID, it.MsgCount, it.LastTime)
	}

	watcher := adminClient.New(adminClient.Config{
		URL: cfg.Client.WSBase + "/ws/admin",
		OnNewOrder: func(orderID int64) {
			log.Printf("Có đơn mới #%d", orderID)
		},
		OnState: func(state client.ConnState) {
			log.Printf("[ws] %s", state)
		},
	})

	watcher.Start(ctx)
	defer watcher.Stop()

	<-ctx.Done()
}
