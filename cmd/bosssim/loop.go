package main

import (
	"log"
	"time"

	"github.com/automoto/bossfight/bot"
	"github.com/automoto/bossfight/simulation"
)

// GameLoop drives a simulation with a bot at a fixed tick rate.
type GameLoop struct {
	sim      *simulation.Simulation
	bot      *bot.Bot
	tickRate int
	maxTime  float64
	stopChan chan struct{}
}

func NewGameLoop(sim *simulation.Simulation, b *bot.Bot, tickRate int, maxTime float64) *GameLoop {
	return &GameLoop{
		sim:      sim,
		bot:      b,
		tickRate: tickRate,
		maxTime:  maxTime,
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until the encounter ends, maxTime of simulated
// time passes or Stop is called.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if g.tick() {
				return
			}
		}
	}
}

// RunFast ticks as fast as possible with the same stop conditions.
func (g *GameLoop) RunFast() {
	for {
		select {
		case <-g.stopChan:
			return
		default:
		}
		if g.tick() {
			return
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// tick advances one frame and reports whether the run is finished.
func (g *GameLoop) tick() bool {
	dt := 1 / float64(g.tickRate)
	g.sim.Step(dt, g.bot.Next(g.sim.Snapshot()))

	if ended, _ := g.sim.Over(); ended {
		return true
	}
	return g.maxTime > 0 && g.sim.Time() >= g.maxTime
}
