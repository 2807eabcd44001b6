// Command chat is the interactive terminal client for the bookstore chat
// backend. It keeps a live connection to the active session, survives
// connection drops, and lets the user hop between remembered sessions.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/huynh044/ChatBot-BookStore/internal/api"
	"github.com/huynh044/ChatBot-BookStore/internal/client"
	"github.com/huynh044/ChatBot-BookStore/internal/config"
	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
	"github.com/huynh044/ChatBot-BookStore/internal/storage"
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

	session := flag.String("session", "", "session id to resume; empty picks the most recent or starts fresh")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewFile(cfg.Client.SessionsFile)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}

	cli := client.New(client.Config{
		API:    api.New(cfg.Client.BaseURL),
		Store:  store,
		WSBase: cfg.Client.WSBase,
		OnState: func(state client.ConnState) {
			fmt.Printf("-- ws: %s\n", state)
		},
		OnMode: func(mode string) {
			fmt.Printf("-- mode: %s\n", mode)
		},
	})
	defer cli.Close()

	cli.Transcript().OnAppend(printEntry)
	cli.Transcript().OnReplace(func(entries []chat.Message) {
		fmt.Println("----")
		for _, m := range entries {
			printEntry(m)
		}
	})

	sessionID := *session
	if sessionID == "" {
		if known := cli.Sessions(); len(known) > 0 {
			sessionID = known[0]
		}
	}

	if sessionID == "" {
		sessionID, err = cli.Reset(ctx)
		if err != nil {
			log.Fatalf("failed to start a new chat session: %v", err)
		}
	} else {
		cli.Start(ctx, sessionID)
	}
	fmt.Printf("-- session: %s\n", sessionID)
	fmt.Println("-- commands: /new, /sessions, /switch <n>, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return
		case line == "/new":
			id, err := cli.Reset(ctx)
			if err != nil {
				// Blocking by design: starting a new conversation failed.
				fmt.Println("!! Không reset được phiên chat. Thử lại.")
				continue
			}
			fmt.Printf("-- session: %s\n", id)
		case line == "/sessions":
			known := cli.Sessions()
			if len(known) == 0 {
				fmt.Println("-- no history")
				continue
			}
			for i, id := range known {
				fmt.Printf("%3d  %s\n", i+1, id)
			}
		case strings.HasPrefix(line, "/switch "):
			known := cli.Sessions()
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/switch ")))
			if err != nil || n < 1 || n > len(known) {
				fmt.Println("-- usage: /switch <n> (see /sessions)")
				continue
			}
			cli.SwitchTo(ctx, known[n-1])
			fmt.Printf("-- session: %s\n", cli.Active())
		default:
			cli.Send(ctx, line)
		}
	}
}

func printEntry(m chat.Message) {
	who := "bot"
	if m.Role == chat.RoleUser {
		who = "you"
	}
	fmt.Printf("%s> %s\n", who, m.Content)
}
