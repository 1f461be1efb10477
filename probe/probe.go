// Package probe looks for Aura lighting controllers on the USB bus. It
// helps to tell a missing vendor service apart from missing hardware.
package probe

import (
	"fmt"

	"github.com/karalabe/gousb/usb"
	"github.com/karalabe/gousb/usbid"
)

// VENDOR_ID is the USB vendor id of ASUSTek.
const VENDOR_ID = "0b05"

// Controller describes one USB device that may drive Aura lighting.
type Controller struct {
	Bus         uint8  `yaml:"bus"`
	Address     uint8  `yaml:"address"`
	Vendor      string `yaml:"vendor"`
	Product     string `yaml:"product"`
	Description string `yaml:"description"`
}

func (c Controller) String() string {
	return fmt.Sprintf("%03d:%03d %s:%s %s", c.Bus, c.Address, c.Vendor, c.Product, c.Description)
}

type ContextError string

func (e ContextError) Error() string {
	return string(e)
}

// Controllers lists all USB devices of vendor VENDOR_ID.
func Controllers() ([]Controller, error) {
	ctx, err := usb.NewContext()
	if err != nil {
		return nil, ContextError(err.Error())
	}
	defer ctx.Close()

	devs, err := ctx.ListDevices(matches)
	// ListDevices may return devices together with an error for the ones
	// it failed to open; the opened ones still need closing.
	defer func() {
		for _, dev := range devs {
			dev.Close()
		}
	}()
	if err != nil && len(devs) == 0 {
		return nil, ContextError(err.Error())
	}

	controllers := make([]Controller, 0, len(devs))
	for _, dev := range devs {
		controllers = append(controllers, describe(dev.Descriptor))
	}
	return controllers, nil
}

func matches(desc *usb.Descriptor) bool {
	return desc.Vendor.String() == VENDOR_ID
}

func describe(desc *usb.Descriptor) Controller {
	return Controller{
		Bus:         desc.Bus,
		Address:     desc.Address,
		Vendor:      desc.Vendor.String(),
		Product:     desc.Product.String(),
		Description: usbid.Describe(desc),
	}
}
