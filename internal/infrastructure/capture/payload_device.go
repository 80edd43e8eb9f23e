// Package capture adapta lectores de códigos al puerto ports.CaptureDevice.
package capture

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/jhoicas/magazzino-api/internal/application/ports"
)

var _ ports.CaptureDevice = (*PayloadDevice)(nil)

// ErrNotOpen ReadCode sin Open previo o después de Close.
var ErrNotOpen = errors.New("capture: dispositivo no abierto")

// PayloadDevice lector "teclado" (wedge): el cliente envía el texto crudo que emitió la pistola.
// Un solo uso: tras la primera lectura devuelve "".
type PayloadDevice struct {
	mu     sync.Mutex
	raw    string
	open   bool
	served bool
}

// NewPayloadDevice construye el dispositivo con la lectura cruda.
func NewPayloadDevice(raw string) *PayloadDevice {
	return &PayloadDevice{raw: raw}
}

func (d *PayloadDevice) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	return nil
}

// ReadCode devuelve el SKU decodificado de la lectura.
func (d *PayloadDevice) ReadCode(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return "", ErrNotOpen
	}
	if d.served {
		return "", nil
	}
	d.served = true
	return Decode(d.raw), nil
}

func (d *PayloadDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	return nil
}

// Decode limpia una lectura de pistola: quita el identificador de simbología AIM (]C1, ]E0, ...)
// y los caracteres de control (CR, LF, TAB, GS) que los lectores agregan como sufijo.
func Decode(raw string) string {
	s := strings.TrimSpace(raw)
	if hasSymbologyPrefix(s) {
		s = s[3:]
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// hasSymbologyPrefix reconoce la forma AIM "]" + letra ASCII + dígito ASCII.
func hasSymbologyPrefix(s string) bool {
	if len(s) < 3 || s[0] != ']' {
		return false
	}
	c, m := s[1], s[2]
	isLetter := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
	return isLetter && m >= '0' && m <= '9'
}
