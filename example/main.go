package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/goaura/aura"
)

// red as the Aura service renders it
var red = aura.HSL{H: 0, S: 1, L: 0.441921}

var sigchan = make(chan os.Signal, 10)

func main() {
	dev := aura.OpenSystem()
	defer dev.Close()

	if !dev.Available() {
		fmt.Fprintln(os.Stderr, "aura lighting is not available")
		os.Exit(1)
	}

	leds := dev.LEDs()
	fmt.Fprintf(os.Stdout, "found %d LEDs\n", len(leds))

	// listen for ctrl+c
	signal.Notify(sigchan, os.Interrupt)

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			for _, led := range leds {
				led.SetHSL(red)
			}
			dev.Apply()
		case <-sigchan:
			fmt.Fprintln(os.Stdout, "\ninterrupted, cleaning up...done")
			return
		}
	}
}
