package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/metakeule/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/goaura/aura"
	"github.com/goaura/aura/interop"
	"github.com/goaura/aura/oscbridge"
	"github.com/goaura/aura/probe"
)

var (
	cfg = config.MustNew("aura", "0.1.0", "control ASUS Aura lighting")

	argLib     = cfg.NewString("lib", "path of the native shim library", config.Default(interop.DefaultLibrary))
	argVerbose = cfg.NewBool("verbose", "log debug output", config.Default(false))

	infoCommand = cfg.MustCommand("info", "print devices, effects and LED colours as yaml")

	effectCommand = cfg.MustCommand("effect", "select an effect by name")
	argEffectName = effectCommand.NewString("name", "name of the effect, as shown by info")

	colorCommand = cfg.MustCommand("color", "set LEDs to one HSL colour and apply")
	argHue       = colorCommand.NewString("hue", "hue in [0,1]", config.Default("0"))
	argSat       = colorCommand.NewString("saturation", "saturation in [0,1]", config.Default("1"))
	argLight     = colorCommand.NewString("lightness", "lightness in [0,1]", config.Default("0.5"))
	argLED       = colorCommand.NewString("led", "only set the LED with this id")

	switchCommand = cfg.MustCommand("switch", "turn the lighting master switch on or off")
	argOn         = switchCommand.NewBool("on", "switch state", config.Default(true))

	usbCommand = cfg.MustCommand("usb", "list ASUS USB devices that may drive the lighting")

	oscCommand = cfg.MustCommand("osc", "serve an OSC bridge until interrupted")
	argAddr    = oscCommand.NewString("addr", "UDP listen address", config.Default("127.0.0.1:9010"))
)

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if argVerbose.Get() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func openDevice() *aura.Device {
	return aura.OpenSystem(
		aura.WithLibrary(argLib.Get()),
		aura.WithLogger(log.Logger),
	)
}

func run() error {
	err := cfg.Run()

	if err != nil {
		return err
	}

	setupLogging()

	switch cfg.ActiveCommand() {
	case usbCommand:
		return listUSB()
	case effectCommand:
		dev := openDevice()
		defer dev.Close()
		return setEffect(dev, argEffectName.Get())
	case colorCommand:
		dev := openDevice()
		defer dev.Close()
		return setColor(dev)
	case switchCommand:
		dev := openDevice()
		defer dev.Close()
		if !dev.Available() {
			return aura.ErrUnavailable
		}
		dev.SetSwitch(argOn.Get())
		dev.Apply()
		return nil
	case oscCommand:
		dev := openDevice()
		defer dev.Close()
		return serveOSC(dev)
	case infoCommand:
		fallthrough
	default:
		dev := openDevice()
		defer dev.Close()
		return printInfo(dev)
	}
}

func printInfo(dev *aura.Device) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(dev.Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}

func setEffect(dev *aura.Device, name string) error {
	if name == "" {
		return fmt.Errorf("missing effect name, see --help")
	}
	if err := dev.SelectEffect(name); err != nil {
		return err
	}
	dev.Apply()
	return nil
}

func setColor(dev *aura.Device) error {
	c, err := parseHSL(argHue.Get(), argSat.Get(), argLight.Get())
	if err != nil {
		return err
	}
	if !dev.Available() {
		return aura.ErrUnavailable
	}

	id := argLED.Get()
	if id == "" {
		dev.Fill(c)
		return nil
	}
	for _, led := range dev.LEDs() {
		if led.ID() == id {
			led.SetHSL(c)
			dev.Apply()
			return nil
		}
	}
	return fmt.Errorf("no LED with id %q", id)
}

func parseHSL(h, s, l string) (aura.HSL, error) {
	var v [3]float32
	for i, in := range []string{h, s, l} {
		f, err := strconv.ParseFloat(in, 32)
		if err != nil {
			return aura.HSL{}, fmt.Errorf("invalid colour channel %q: %w", in, err)
		}
		v[i] = float32(f)
	}
	return aura.HSL{H: v[0], S: v[1], L: v[2]}, nil
}

func listUSB() error {
	controllers, err := probe.Controllers()
	if err != nil {
		return err
	}
	if len(controllers) == 0 {
		fmt.Fprintln(os.Stdout, "no ASUS USB devices found")
		return nil
	}
	for _, c := range controllers {
		fmt.Fprintln(os.Stdout, c)
	}
	return nil
}

func serveOSC(dev *aura.Device) error {
	if !dev.Available() {
		log.Warn().Msg("lighting is not available, OSC messages will have no effect")
	}

	// listen for ctrl+c
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bridge := oscbridge.New(dev, log.Logger)
	err := bridge.Serve(ctx, argAddr.Get())
	fmt.Fprintln(os.Stdout, "\ninterrupted, cleaning up...done")
	return err
}

func main() {
	err := run()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
