package strx

import "strings"

// Coalesce returns s if non-empty, otherwise d.
func Coalesce(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// IsIdent reports whether s is usable as a Go identifier (ASCII only, which
// is all the alias tables need).
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ConstName renders a table name as the generated constant spelling:
// "uart_rx" -> "UART_RX", "d13" -> "D13".
func ConstName(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
}

// Common hardware initialisms kept fully upper-cased in field names.
var initialisms = map[string]bool{
	"adc":   true,
	"dac":   true,
	"dma":   true,
	"dmac":  true,
	"i2c":   true,
	"i2s":   true,
	"led":   true,
	"miso":  true,
	"mosi":  true,
	"qspi":  true,
	"sck":   true,
	"scl":   true,
	"sda":   true,
	"spi":   true,
	"uart":  true,
	"usart": true,
	"usb":   true,
}

// FieldName renders a table name as an exported Go field or method name:
// "uart_rx" -> "UARTRx", "d13" -> "D13", "max-channels" -> "MaxChannels".
func FieldName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		lp := strings.ToLower(p)
		if initialisms[lp] {
			b.WriteString(strings.ToUpper(p))
			continue
		}
		b.WriteString(strings.ToUpper(lp[:1]))
		b.WriteString(lp[1:])
	}
	return b.String()
}
