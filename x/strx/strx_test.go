package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Fatalf("Coalesce empty: got %q", got)
	}
	if got := Coalesce("set", "fallback"); got != "set" {
		t.Fatalf("Coalesce set: got %q", got)
	}
}

func TestIsIdent(t *testing.T) {
	ok := []string{"d13", "uart_rx", "A0", "_x", "led2"}
	bad := []string{"", "13d", "uart-rx", "a b", "é"}
	for _, s := range ok {
		if !IsIdent(s) {
			t.Fatalf("IsIdent(%q) = false, want true", s)
		}
	}
	for _, s := range bad {
		if IsIdent(s) {
			t.Fatalf("IsIdent(%q) = true, want false", s)
		}
	}
}

func TestConstName(t *testing.T) {
	type C struct{ in, want string }
	for _, c := range []C{
		{"d13", "D13"},
		{"uart_rx", "UART_RX"},
		{"max-channels", "MAX_CHANNELS"},
		{"neopixel", "NEOPIXEL"},
	} {
		if got := ConstName(c.in); got != c.want {
			t.Fatalf("ConstName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFieldName(t *testing.T) {
	type C struct{ in, want string }
	for _, c := range []C{
		{"d13", "D13"},
		{"led", "LED"},
		{"uart_rx", "UARTRx"},
		{"uart_sercom", "UARTSercom"},
		{"i2c_sercom", "I2CSercom"},
		{"max-channels", "MaxChannels"},
		{"usb_dm", "USBDm"},
		{"mosi", "MOSI"},
		{"miso", "MISO"},
		{"button", "Button"},
	} {
		if got := FieldName(c.in); got != c.want {
			t.Fatalf("FieldName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
