// Package oscbridge lets a host drive the lighting over OSC.
//
// Supported messages:
//
//	/aura/apply
//	/aura/effect <name>
//	/aura/color <h> <s> <l>          every LED
//	/aura/led <index> <h> <s> <l>    one LED by position
//	/aura/switch <on>
//
// Colour changes are batched like everywhere else: send /aura/apply to
// make them visible.
package oscbridge

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/hypebeast/go-osc/osc"
	"github.com/rs/zerolog"

	"github.com/goaura/aura"
)

const (
	AddrApply  = "/aura/apply"
	AddrEffect = "/aura/effect"
	AddrColor  = "/aura/color"
	AddrLED    = "/aura/led"
	AddrSwitch = "/aura/switch"
)

// Bridge forwards OSC messages to a Device. The OSC server handles
// packets on their own goroutines, so all Device access is serialized
// through mu.
type Bridge struct {
	mu  sync.Mutex
	dev *aura.Device
	log zerolog.Logger
}

func New(dev *aura.Device, logger zerolog.Logger) *Bridge {
	return &Bridge{
		dev: dev,
		log: logger.With().Str("component", "oscbridge").Logger(),
	}
}

// Dispatcher returns a dispatcher with all handlers registered.
func (b *Bridge) Dispatcher() *osc.StandardDispatcher {
	d := osc.NewStandardDispatcher()
	for addr, h := range map[string]osc.HandlerFunc{
		AddrApply:  b.handleApply,
		AddrEffect: b.handleEffect,
		AddrColor:  b.handleColor,
		AddrLED:    b.handleLED,
		AddrSwitch: b.handleSwitch,
	} {
		if err := d.AddMsgHandler(addr, h); err != nil {
			b.log.Error().Err(err).Str("addr", addr).Msg("register handler")
		}
	}
	return d
}

// Serve listens for OSC packets on the UDP address addr until ctx is done.
func (b *Bridge) Serve(ctx context.Context, addr string) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return err
	}

	server := &osc.Server{Dispatcher: b.Dispatcher()}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close()
	}()

	b.log.Info().Str("addr", conn.LocalAddr().String()).Msg("listening")
	err = server.Serve(conn)
	if ctx.Err() != nil {
		return nil
	}
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (b *Bridge) handleApply(msg *osc.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dev.Apply()
}

func (b *Bridge) handleEffect(msg *osc.Message) {
	if len(msg.Arguments) != 1 {
		b.malformed(msg)
		return
	}
	name, ok := msg.Arguments[0].(string)
	if !ok {
		b.malformed(msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.dev.SelectEffect(name); err != nil {
		b.log.Warn().Err(err).Msg("effect not set")
	}
}

func (b *Bridge) handleColor(msg *osc.Message) {
	c, ok := hslArgs(msg.Arguments)
	if !ok {
		b.malformed(msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, led := range b.dev.LEDs() {
		led.SetHSL(c)
	}
}

func (b *Bridge) handleLED(msg *osc.Message) {
	if len(msg.Arguments) != 4 {
		b.malformed(msg)
		return
	}
	index, ok := intArg(msg.Arguments[0])
	if !ok {
		b.malformed(msg)
		return
	}
	c, ok := hslArgs(msg.Arguments[1:])
	if !ok {
		b.malformed(msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	leds := b.dev.LEDs()
	if index < 0 || index >= len(leds) {
		b.log.Warn().Int("index", index).Int("leds", len(leds)).Msg("led index out of range")
		return
	}
	leds[index].SetHSL(c)
}

func (b *Bridge) handleSwitch(msg *osc.Message) {
	if len(msg.Arguments) != 1 {
		b.malformed(msg)
		return
	}
	on, ok := boolArg(msg.Arguments[0])
	if !ok {
		b.malformed(msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.dev.SetSwitch(on)
}

func (b *Bridge) malformed(msg *osc.Message) {
	b.log.Warn().Str("addr", msg.Address).Int("args", len(msg.Arguments)).Msg("malformed message ignored")
}
