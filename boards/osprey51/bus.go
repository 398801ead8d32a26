//go:build atsamd51g19 || atsamd51j19 || atsamd51n19 || atsamd51p19

package osprey51

import "machine"

// UART configures the board UART on the silkscreen TX/RX pair and returns
// its handle.
func (p *Periph) UART(baud uint32) (*machine.UART, error) {
	err := p.UARTSercom.Configure(machine.UARTConfig{
		BaudRate: baud,
		TX:       UART_TX,
		RX:       UART_RX,
	})
	if err != nil {
		return nil, err
	}
	return p.UARTSercom, nil
}

// I2C configures the board I2C bus on the SDA/SCL pads and returns its
// handle.
func (p *Periph) I2C(hz uint32) (*machine.I2C, error) {
	err := p.I2CSercom.Configure(machine.I2CConfig{
		Frequency: hz,
		SDA:       SDA,
		SCL:       SCL,
	})
	if err != nil {
		return nil, err
	}
	return p.I2CSercom, nil
}

// SPI configures the board SPI bus on the SCK/MOSI/MISO pads and returns
// its handle.
func (p *Periph) SPI(hz uint32) (machine.SPI, error) {
	err := p.SPISercom.Configure(machine.SPIConfig{
		Frequency: hz,
		SCK:       SCK,
		SDO:       MOSI,
		SDI:       MISO,
	})
	return p.SPISercom, err
}
