package aura

// Snapshot is a point in time view of a Device, suitable for printing.
type Snapshot struct {
	Available bool          `yaml:"available"`
	Switch    bool          `yaml:"switch"`
	Devices   []string      `yaml:"devices"`
	Effects   []Effect      `yaml:"effects"`
	Current   string        `yaml:"current_effect"`
	LEDs      []LEDSnapshot `yaml:"leds"`
}

type LEDSnapshot struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color HSL    `yaml:"color"`
}

// Snapshot reads the whole state, including the colour of every LED.
func (d *Device) Snapshot() Snapshot {
	s := Snapshot{
		Available: d.Available(),
		Switch:    d.Switch(),
		Devices:   d.DeviceNames(),
		Effects:   d.Effects(),
		Current:   d.CurrentEffectName(),
	}
	for _, led := range d.LEDs() {
		s.LEDs = append(s.LEDs, LEDSnapshot{ID: led.ID(), Name: led.Name(), Color: led.HSL()})
	}
	return s
}
