// Package device talks to an external hardware signing device. The device
// is consulted last in the key resolution chain; all calls block on device
// I/O and any transport failure is fatal for the operation in progress —
// there are no retries.
package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"genwallet/internal/domain"
)

// Transport selects how the device is reached.
type Transport string

const (
	TransportHID Transport = "hid"
	TransportTCP Transport = "tcp"
)

// Request opcodes of the length-prefixed wire protocol: one byte opcode,
// four bytes big-endian payload length, payload. Responses carry a four
// byte length then the payload.
const (
	opPublicKey byte = 0x01
	opSign      byte = 0x02
)

// Client is a connected hardware signing device.
type Client struct {
	conn net.Conn
}

// Dial connects to a device over the selected transport. Only the TCP
// transport is wired; HID requires a host-side driver this build does not
// carry.
func Dial(transport Transport, addr string) (*Client, error) {
	switch transport {
	case TransportTCP:
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("connect to device: %w", err)
		}
		return &Client{conn: conn}, nil
	case TransportHID:
		return nil, fmt.Errorf("device transport %q is not supported by this build", transport)
	default:
		return nil, fmt.Errorf("unknown device transport %q", transport)
	}
}

// Close releases the device connection.
func (c *Client) Close() error { return c.conn.Close() }

// PublicKey asks the device for its signing public key.
func (c *Client) PublicKey() (domain.PublicKey, error) {
	var pub domain.PublicKey
	resp, err := c.roundTrip(opPublicKey, nil)
	if err != nil {
		return pub, err
	}
	if len(resp) != len(pub) {
		return pub, fmt.Errorf("device public key: want %d bytes, got %d", len(pub), len(resp))
	}
	copy(pub[:], resp)
	return pub, nil
}

// Sign asks the device to sign data with its held key. The call blocks
// until the operator approves or the transport fails.
func (c *Client) Sign(data []byte) ([]byte, error) {
	sig, err := c.roundTrip(opSign, data)
	if err != nil {
		return nil, err
	}
	if len(sig) == 0 {
		return nil, fmt.Errorf("device returned an empty signature")
	}
	return sig, nil
}

func (c *Client) roundTrip(op byte, payload []byte) ([]byte, error) {
	req := make([]byte, 5+len(payload))
	req[0] = op
	binary.BigEndian.PutUint32(req[1:5], uint32(len(payload)))
	copy(req[5:], payload)
	if _, err := c.conn.Write(req); err != nil {
		return nil, fmt.Errorf("device write: %w", err)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(c.conn, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("device read: %w", err)
	}
	resp := make([]byte, binary.BigEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(c.conn, resp); err != nil {
		return nil, fmt.Errorf("device read: %w", err)
	}
	return resp, nil
}

var _ domain.DeviceSigner = (*Client)(nil)
