// Package variant holds the chip/package catalog the generator validates
// board definitions against. The catalog ships embedded; it is read-only
// metadata, the same role the part-number record plays for flashing tools.
package variant

import (
	"bytes"
	_ "embed"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed variants.yaml
var rawCatalog []byte

// Variant describes one chip/package fit of the SAMD51 family.
type Variant struct {
	Part        string            `yaml:"part"` // e.g. "ATSAMD51P19A"
	Tag         string            `yaml:"tag"`  // build tag, e.g. "atsamd51p19"
	Sercoms     int               `yaml:"sercoms"`
	TCs         int               `yaml:"tcs"`
	DMAChannels int               `yaml:"dmaChannels"`
	USB         bool              `yaml:"usb"`
	FlashKB     int               `yaml:"flashKB"`
	RAMKB       int               `yaml:"ramKB"`
	Ports       map[string]uint32 `yaml:"ports"` // port letter -> pin mask
}

var catalog []Variant

func init() {
	dec := yaml.NewDecoder(bytes.NewReader(rawCatalog))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		panic("variant: bad embedded catalog: " + err.Error())
	}
}

// All returns the catalog in declaration order.
func All() []Variant {
	out := make([]Variant, len(catalog))
	copy(out, catalog)
	return out
}

// ByTag returns the variant carrying the given build tag.
func ByTag(tag string) (Variant, bool) {
	for _, v := range catalog {
		if v.Tag == tag {
			return v, true
		}
	}
	return Variant{}, false
}

// ByPart returns the variant with the given part number.
func ByPart(part string) (Variant, bool) {
	for _, v := range catalog {
		if v.Part == part {
			return v, true
		}
	}
	return Variant{}, false
}

// ParsePin splits a pin name like "PA23" into its port letter and bit.
// Names are always two digits; "PA3" is not a valid spelling.
func ParsePin(name string) (port string, bit uint, ok bool) {
	if len(name) != 4 || name[0] != 'P' {
		return "", 0, false
	}
	if name[1] < 'A' || name[1] > 'Z' {
		return "", 0, false
	}
	n, err := strconv.Atoi(name[2:])
	if err != nil || name[2] < '0' || name[2] > '9' || n < 0 || n > 31 {
		return "", 0, false
	}
	return name[1:2], uint(n), true
}

// HasPin reports whether the port pin named like "PA23" is bonded out on v.
func (v Variant) HasPin(name string) bool {
	port, bit, ok := ParsePin(name)
	if !ok {
		return false
	}
	mask, ok := v.Ports[port]
	return ok && mask&(1<<bit) != 0
}

// HasPeriph reports whether the named machine peripheral instance
// exists on v. Names may carry a mode suffix after the instance, as in
// "SERCOM5_USART_INT".
func (v Variant) HasPeriph(name string) bool {
	inst, _, _ := strings.Cut(name, "_")
	num := func(prefix string, limit int) bool {
		n, err := strconv.Atoi(strings.TrimPrefix(inst, prefix))
		return err == nil && n >= 0 && n < limit
	}
	switch {
	case strings.HasPrefix(inst, "SERCOM"):
		return num("SERCOM", v.Sercoms)
	// UART/I2C/SPI instances each occupy one SERCOM, so the SERCOM budget
	// bounds their instance numbers as well.
	case strings.HasPrefix(inst, "UART"):
		return num("UART", v.Sercoms)
	case strings.HasPrefix(inst, "I2C"):
		return num("I2C", v.Sercoms)
	case strings.HasPrefix(inst, "SPI"):
		return num("SPI", v.Sercoms)
	case strings.HasPrefix(inst, "TCC"):
		return num("TCC", v.TCs)
	case strings.HasPrefix(inst, "TC"):
		return num("TC", v.TCs)
	case strings.HasPrefix(inst, "ADC"):
		return num("ADC", 2)
	case inst == "DAC", inst == "DMAC":
		return true
	case inst == "USB":
		return v.USB
	}
	return false
}
