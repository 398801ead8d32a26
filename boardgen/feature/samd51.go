package feature

// Flags returns the flag universe for SAMD51-class boards. The hal-* flags
// belong to the machine/runtime layer and are reached through Implies only;
// board definitions never list them directly.
func Flags() []Flag {
	return []Flag{
		{Name: "dma"},
		{Name: "max-channels"},
		{Name: "usb", Implies: []string{"hal-usb"}},
		{Name: "rt", Implies: []string{"hal-rt"}},
		{Name: "use_semihosting"},

		{Name: "hal-usb"},
		{Name: "hal-rt"},
	}
}

// Capabilities returns the capability universe for SAMD51-class boards.
// max-channels extends the DMA channel pool and is an error without dma.
func Capabilities() []Capability {
	return []Capability{
		{Name: "dma", Flag: "dma", Tag: "dma"},
		{Name: "max-channels", Flag: "max-channels", Tag: "maxchan", Requires: []string{"dma"}},
		{Name: "usb", Flag: "usb", Tag: "usb"},
		{Name: "rt", Flag: "rt", Tag: "rt"},
		{Name: "semihosting", Flag: "use_semihosting", Tag: "semihosting"},
	}
}
