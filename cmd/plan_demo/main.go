package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tripmate/internal/ai"
	"tripmate/internal/config"
	"tripmate/internal/modules/history"
	"tripmate/internal/modules/planner"
)

func main() {
	name := flag.String("name", "", "traveller name (history key)")
	city := flag.String("city", "", "destination city")
	days := flag.Int("days", 3, "number of days (1-30)")
	budget := flag.Int("budget", 15000, "total budget in INR")
	prefs := flag.String("prefs", "", "free-text preferences")
	flag.Parse()

	if *name == "" || *city == "" {
		log.Fatal("-name and -city are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AI.GenerateTimeout)
	defer cancel()

	provider, closeProvider, err := ai.NewProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer closeProvider()

	store, err := history.NewFileStore(cfg.History.Dir, cfg.History.LegacyKeys)
	if err != nil {
		log.Fatalf("Failed to open history: %v", err)
	}
	hist := history.NewService(store)

	fmt.Printf("Planning %d days in %s for %s (₹%d)...\n", *days, *city, *name, *budget)
	res := planner.NewService(provider).Generate(ctx, planner.TripRequest{
		City:        *city,
		Days:        *days,
		Budget:      *budget,
		Preferences: *prefs,
	})
	fmt.Println(res.Message())
	if !res.OK() {
		return
	}

	count, err := hist.Append(context.Background(), *name, history.Record{
		City:        *city,
		Days:        *days,
		Budget:      *budget,
		Preferences: *prefs,
		Itinerary:   res.Text,
	})
	if err != nil {
		log.Fatalf("Failed to save itinerary: %v", err)
	}
	fmt.Printf("\nSaved as trip #%d\n", count)

	recent, err := hist.Recent(context.Background(), *name, history.DefaultRecent)
	if err != nil {
		log.Fatalf("Failed to read history: %v", err)
	}
	fmt.Println("\n== Past Trips ==")
	for _, e := range recent {
		fmt.Printf("#%d %s, %d days, ₹%d\n", e.Index, e.City, e.Days, e.Budget)
	}
}
