// internal/poller/modbus/port.go
package modbus

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/modbus"
	"github.com/goburrow/serial"
	"github.com/sirupsen/logrus"
)

// Function codes this adapter can frame.
const (
	fcReadCoils          = 0x01
	fcReadDiscreteInputs = 0x02
	fcReadHolding        = 0x03
	fcReadInput          = 0x04
	fcReadDeviceID       = 0x2B
	fcReadCustom         = 0x43 // controller specific register block read
	exceptionFlag        = 0x80
)

// maxADU bounds a single RTU frame.
const maxADU = 256

// readSlice caps a single read on the line. Receive keeps reading until its
// own deadline, so a short slice only bounds how long a drain waits.
const readSlice = 50 * time.Millisecond

// maxDrain bounds the stale input discarded before one request.
const maxDrain = 4 * maxADU

// Config is the serial line configuration.
type Config struct {
	Address  string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
	Timeout  time.Duration // per response; single line reads are capped at readSlice
}

// Port implements poller.Port over a serial line with RTU framing.
// It sends literal frames unchanged and strips framing from responses.
type Port struct {
	line    io.ReadWriteCloser
	rtu     *modbus.RTUClientHandler // packager only, never connected
	request []byte
	log     logrus.FieldLogger
}

// Open opens the serial line.
func Open(cfg Config, log logrus.FieldLogger) (*Port, error) {
	if cfg.Address == "" {
		return nil, errors.New("modbus port: address required")
	}
	line, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  lineTimeout(cfg.Timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("modbus port: open %s: %w", cfg.Address, err)
	}
	return newPort(line, cfg.Address, log), nil
}

func newPort(line io.ReadWriteCloser, address string, log logrus.FieldLogger) *Port {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Port{
		line: line,
		rtu:  modbus.NewRTUClientHandler(address),
		log:  log.WithField("port", address),
	}
}

func lineTimeout(d time.Duration) time.Duration {
	if d <= 0 || d > readSlice {
		return readSlice
	}
	return d
}

// Close releases the serial line.
func (p *Port) Close() error {
	if p == nil || p.line == nil {
		return nil
	}
	return p.line.Close()
}

// SendFrame discards pending input and writes one literal request frame.
// Responses carry no transaction id, so a late answer to an earlier request
// must not be left on the line for the next Receive.
func (p *Port) SendFrame(frame []byte) error {
	if len(frame) < 4 {
		return fmt.Errorf("modbus port: frame too short (%d bytes)", len(frame))
	}
	if err := p.drain(); err != nil {
		p.request = nil
		return fmt.Errorf("modbus port: drain: %w", err)
	}
	p.log.WithField("frame", fmt.Sprintf("% X", frame)).Debug("tx")

	if _, err := p.line.Write(frame); err != nil {
		p.request = nil
		return err
	}
	p.request = frame
	return nil
}

// Receive reads one response ADU, checks address and CRC, and returns
// the data payload. Exception responses come back as *modbus.ModbusError.
func (p *Port) Receive(timeout time.Duration) ([]byte, error) {
	if p.request == nil {
		return nil, errors.New("modbus port: receive without request")
	}
	req := p.request
	p.request = nil

	adu, err := p.readADU(time.Now().Add(timeout))
	if len(adu) > 0 {
		p.log.WithField("frame", fmt.Sprintf("% X", adu)).Debug("rx")
	}
	if err != nil {
		return nil, err
	}

	if err := p.rtu.Verify(req, adu); err != nil {
		return nil, err
	}
	pdu, err := p.rtu.Decode(adu)
	if err != nil {
		return nil, err
	}

	if pdu.FunctionCode == req[1]|exceptionFlag {
		return nil, &modbus.ModbusError{FunctionCode: pdu.FunctionCode, ExceptionCode: pdu.Data[0]}
	}
	if pdu.FunctionCode != req[1] {
		return nil, fmt.Errorf("modbus port: function mismatch: got=%#x want=%#x", pdu.FunctionCode, req[1])
	}
	return payload(pdu)
}

// drain reads until the line is quiet and drops what arrived.
func (p *Port) drain() error {
	chunk := make([]byte, maxADU)
	var stale []byte

	for len(stale) < maxDrain {
		n, err := p.line.Read(chunk)
		if n > 0 {
			stale = append(stale, chunk[:n]...)
		}
		if err != nil && !errors.Is(err, serial.ErrTimeout) {
			return err
		}
		if n == 0 || err != nil {
			break
		}
	}

	if len(stale) > 0 {
		p.log.WithField("frame", fmt.Sprintf("% X", stale)).Debug("discarded stale input")
	}
	return nil
}

// payload strips the function specific header from a response PDU.
func payload(pdu *modbus.ProtocolDataUnit) ([]byte, error) {
	d := pdu.Data
	if pdu.FunctionCode == fcReadDeviceID {
		if len(d) < 6 {
			return nil, fmt.Errorf("modbus port: short identification header (%d bytes)", len(d))
		}
		return d[6:], nil
	}
	if len(d) < 1 || int(d[0]) != len(d)-1 {
		return nil, fmt.Errorf("modbus port: byte count mismatch in %d byte payload", len(d))
	}
	return d[1:], nil
}

// readADU accumulates bytes until the frame length implied by its header is
// reached. A quiet line past the deadline is a timeout.
func (p *Port) readADU(deadline time.Time) ([]byte, error) {
	adu := make([]byte, 0, maxADU)
	chunk := make([]byte, maxADU)

	for {
		want, err := frameLength(adu)
		if err != nil {
			return adu, err
		}
		if want > 0 && len(adu) >= want {
			return adu[:want], nil
		}
		if time.Now().After(deadline) {
			return adu, fmt.Errorf("modbus port: timeout after %d bytes", len(adu))
		}

		n, err := p.line.Read(chunk)
		if n > 0 {
			adu = append(adu, chunk[:n]...)
		}
		if err != nil && !errors.Is(err, serial.ErrTimeout) {
			return adu, err
		}
	}
}

// frameLength returns the full ADU length once enough of the header is known,
// or 0 when more bytes are needed.
func frameLength(adu []byte) (int, error) {
	if len(adu) < 3 {
		return 0, nil
	}
	fc := adu[1]

	switch {
	case fc&exceptionFlag != 0:
		return 5, nil // addr fc code crc crc

	case fc == fcReadDeviceID:
		// addr fc mei code conformity more next count, then (id len value)*
		const header = 8
		if len(adu) < header {
			return 0, nil
		}
		pos := header
		for i := 0; i < int(adu[7]); i++ {
			if len(adu) < pos+2 {
				return 0, nil
			}
			pos += 2 + int(adu[pos+1])
		}
		n := pos + 2
		if n > maxADU {
			return 0, fmt.Errorf("modbus port: identification frame exceeds %d bytes", maxADU)
		}
		return n, nil

	case supported(fc):
		return 3 + int(adu[2]) + 2, nil // addr fc count data crc crc
	}

	return 0, fmt.Errorf("modbus port: unsupported function code %#x", fc)
}

func supported(fc byte) bool {
	switch fc {
	case fcReadCoils, fcReadDiscreteInputs, fcReadHolding, fcReadInput, fcReadCustom, fcReadDeviceID:
		return true
	}
	return false
}

// VerifyFrames checks address and CRC of literal request frames with the RTU
// packager, so a mistyped table fails before the first poll.
func VerifyFrames(frames [][]byte) error {
	rtu := modbus.NewRTUClientHandler("")
	for i, f := range frames {
		if len(f) < 4 {
			return fmt.Errorf("frame %d: too short (%d bytes)", i, len(f))
		}
		if _, err := rtu.Decode(f); err != nil {
			return fmt.Errorf("frame % X: %w", f, err)
		}
		if !supported(f[1]) {
			return fmt.Errorf("frame % X: unsupported function code %#x", f, f[1])
		}
	}
	return nil
}
