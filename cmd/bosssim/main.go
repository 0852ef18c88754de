// Command bosssim runs the encounter headless with a scripted bot and logs
// its milestones.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/bossfight/assets"
	"github.com/automoto/bossfight/bot"
	"github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/simulation"
)

func main() {
	tickRate := flag.Int("tickrate", config.Sim.TickRate, "Simulation tick rate (updates per second)")
	fast := flag.Bool("fast", false, "Run as fast as possible instead of in real time")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal or hard")
	seed := flag.Uint64("seed", 0, "Random seed (0 = built-in)")
	maxTime := flag.Float64("max-time", 600, "Stop after this many simulated seconds (0 = no limit)")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay constants")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("tick rate must be positive, got %d", *tickRate)
	}

	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	arena, err := assets.LoadArena()
	if err != nil {
		log.Printf("Warning: %v, using the default arena", err)
	}

	d := config.ParseBotDifficulty(*difficulty)
	sim := simulation.New(simulation.LogSink{}, simulation.Options{Arena: arena, Seed: *seed})
	loop := NewGameLoop(sim, bot.New(d), *tickRate, *maxTime)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Starting bosssim (bot: %s, tick rate: %d/s, fast: %v)", d, *tickRate, *fast)
	if *fast {
		loop.RunFast()
	} else {
		loop.Run()
	}

	f := sim.Snapshot()
	ended, victory := sim.Over()
	log.Printf("Finished at %.1fs: ended=%v victory=%v boss=%d/%d player=%d/%d",
		f.Time, ended, victory, f.Boss.Health, f.Boss.MaxHealth, f.Player.Health, f.Player.MaxHealth)
}
