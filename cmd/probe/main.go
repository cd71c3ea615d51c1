package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"voice-assistant-nlu/config"
	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/nlu"
	nluRepo "voice-assistant-nlu/internal/nlu/repository/gocache"
	nluUC "voice-assistant-nlu/internal/nlu/usecase"
	"voice-assistant-nlu/internal/schema"
	"voice-assistant-nlu/pkg/log"
)

// main is the entry point for the interactive console probe. It drives the
// engine directly, without the HTTP layer, which is handy for tuning domain
// schemas offline.
//
// Usage:
//
//	go run ./cmd/probe -domain real_estate
//	> I need a room
//	> $5500, 3 rooms, in london
func main() {
	domainFlag := flag.String("domain", "real_estate", "domain id to converse in")
	userFlag := flag.String("user", "console", "user id for the session")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	registry, err := schema.Load(cfg.Domains.Dir)
	if err != nil {
		fmt.Println("Failed to load domain schemas: ", err)
		return
	}
	if _, ok := registry.Get(*domainFlag); !ok {
		fmt.Printf("Unknown domain %q, available: %s\n", *domainFlag, strings.Join(registry.Names(), ", "))
		return
	}

	store := nluRepo.New(logger, cfg.Engine.SessionTTL, cfg.Engine.SweepInterval)
	uc := nluUC.New(logger, registry, store)
	sc := model.Scope{UserID: *userFlag}

	fmt.Printf("Conversing in %q as %q. Ctrl-D to quit.\n", *domainFlag, *userFlag)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		out, err := uc.HandleTurn(ctx, sc, nlu.TurnInput{
			Domain: *domainFlag,
			Text:   scanner.Text(),
		})
		if err != nil {
			fmt.Println("error:", err)
			fmt.Print("> ")
			continue
		}

		fmt.Println(out.Reply)
		fmt.Printf("  [intent=%s confidence=%.2f status=%s", out.Intent, out.Confidence, out.Status)
		if len(out.Slots) > 0 {
			fmt.Printf(" slots=%v", out.Slots)
		}
		if len(out.Missing) > 0 {
			fmt.Printf(" missing=%v", out.Missing)
		}
		fmt.Println("]")
		fmt.Print("> ")
	}
}
