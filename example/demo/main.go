package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goaura/aura"
)

const fps = 30

// rainbow spreads the hue wheel over the LEDs and rotates it.
func rainbow(leds []*aura.LED, t float64) {
	n := float64(len(leds))
	for i, led := range leds {
		h := math.Mod(t/4+float64(i)/n, 1)
		led.SetHSL(aura.HSL{H: float32(h), S: 1, L: 0.5})
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	dev := aura.OpenSystem(aura.WithLogger(log.Logger))
	defer dev.Close()

	leds := dev.LEDs()
	if len(leds) == 0 {
		fmt.Fprintln(os.Stderr, "no aura LEDs found")
		os.Exit(1)
	}

	previous, _ := dev.CurrentEffect()
	log.Info().Int("leds", len(leds)).Str("effect", previous.Name).Msg("starting rainbow")

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt)

	start := time.Now()
	tick := time.NewTicker(time.Second / fps)
	defer tick.Stop()

	for {
		select {
		case now := <-tick.C:
			rainbow(leds, now.Sub(start).Seconds())
			dev.Apply()
		case <-sigchan:
			if previous.Name != "" {
				dev.SetEffect(previous.Name)
				dev.Apply()
			}
			log.Info().Msg("stopped")
			return
		}
	}
}
