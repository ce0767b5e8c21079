package stunattr

import (
	"time"

	"github.com/pkg/errors"
)

const (
	lifetimeSize      = 4 // 32 bit
	channelNumberSize = 4 // 16 bit number + RFFU
	transportSize     = 4 // 8 bit protocol + RFFU
	tokenSize         = 8 // 64 bit
	evenPortSize      = 1
)

// Lifetime implements LIFETIME attribute: the allocation lifetime in
// seconds, carried as a 32 bit unsigned integer. Sub-second precision
// of Duration is discarded on encode.
//
// RFC 5766 Section 14.2.
type Lifetime struct {
	Duration time.Duration
}

// Type returns AttrLifetime.
func (a *Lifetime) Type() AttrType { return AttrLifetime }

// Name returns the human label of the attribute type.
func (a *Lifetime) Name() string { return AttrLifetime.String() }

// DataLength returns 4.
func (a *Lifetime) DataLength() uint16 { return lifetimeSize }

func (a *Lifetime) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	b := make([]byte, lifetimeSize)
	bin.PutUint32(b, uint32(a.Duration.Seconds()))
	return append(dst, b...), nil
}

func (a *Lifetime) decodeBody(v []byte, _ TransactionID) error {
	if len(v) != lifetimeSize {
		return errors.Errorf("invalid lifetime length %d != %d (expected)", len(v), lifetimeSize)
	}
	a.Duration = time.Duration(bin.Uint32(v)) * time.Second
	return nil
}

// ChannelNumber implements CHANNEL-NUMBER attribute: a 16 bit channel
// number followed by two RFFU bytes that are zero on transmission and
// ignored on reception.
//
// RFC 5766 Section 14.1.
type ChannelNumber struct {
	Number uint16
}

// Type returns AttrChannelNumber.
func (a *ChannelNumber) Type() AttrType { return AttrChannelNumber }

// Name returns the human label of the attribute type.
func (a *ChannelNumber) Name() string { return AttrChannelNumber.String() }

// DataLength returns 4.
func (a *ChannelNumber) DataLength() uint16 { return channelNumberSize }

func (a *ChannelNumber) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	b := make([]byte, channelNumberSize)
	bin.PutUint16(b[0:2], a.Number)
	return append(dst, b...), nil
}

func (a *ChannelNumber) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrChannelNumber, len(v), channelNumberSize); err != nil {
		return err
	}
	a.Number = bin.Uint16(v[0:2])
	return nil
}

// ProtocolNumber is an IANA assigned protocol number, as carried in the
// IPv4 Protocol and IPv6 NextHeader fields.
type ProtocolNumber byte

// ProtocolUDP is the only codepoint RFC 5766 allows.
const ProtocolUDP ProtocolNumber = 0x11

// RequestedTransport implements REQUESTED-TRANSPORT attribute: the
// protocol the client wants for the allocated transport address,
// followed by three RFFU bytes.
//
// RFC 5766 Section 14.7.
type RequestedTransport struct {
	Protocol ProtocolNumber
}

// Type returns AttrRequestedTransport.
func (a *RequestedTransport) Type() AttrType { return AttrRequestedTransport }

// Name returns the human label of the attribute type.
func (a *RequestedTransport) Name() string { return AttrRequestedTransport.String() }

// DataLength returns 4.
func (a *RequestedTransport) DataLength() uint16 { return transportSize }

func (a *RequestedTransport) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	b := make([]byte, transportSize)
	b[0] = byte(a.Protocol)
	return append(dst, b...), nil
}

func (a *RequestedTransport) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrRequestedTransport, len(v), transportSize); err != nil {
		return err
	}
	a.Protocol = ProtocolNumber(v[0])
	return nil
}

// Data implements DATA attribute: the application payload of Send and
// Data indications, variable length.
//
// RFC 5766 Section 14.4.
type Data struct {
	Data []byte
}

// Type returns AttrData.
func (a *Data) Type() AttrType { return AttrData }

// Name returns the human label of the attribute type.
func (a *Data) Name() string { return AttrData.String() }

// DataLength returns current length of the payload.
func (a *Data) DataLength() uint16 { return uint16(len(a.Data)) }

func (a *Data) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return append(dst, a.Data...), nil
}

func (a *Data) decodeBody(v []byte, _ TransactionID) error {
	a.Data = append(a.Data[:0], v...)
	return nil
}

// ReservationToken implements RESERVATION-TOKEN attribute: an 8 byte
// token identifying a relayed transport address held in reserve.
//
// RFC 5766 Section 14.9.
type ReservationToken struct {
	Token []byte
}

// Type returns AttrReservationToken.
func (a *ReservationToken) Type() AttrType { return AttrReservationToken }

// Name returns the human label of the attribute type.
func (a *ReservationToken) Name() string { return AttrReservationToken.String() }

// DataLength returns 8.
func (a *ReservationToken) DataLength() uint16 { return tokenSize }

func (a *ReservationToken) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	if len(a.Token) != tokenSize {
		return nil, errors.Errorf("invalid reservation token length %d != %d (expected)",
			len(a.Token), tokenSize,
		)
	}
	return append(dst, a.Token...), nil
}

func (a *ReservationToken) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrReservationToken, len(v), tokenSize); err != nil {
		return err
	}
	a.Token = append(a.Token[:0], v...)
	return nil
}

// EvenPort implements EVEN-PORT attribute: one byte whose high bit
// asks the server to reserve the next-higher port number.
//
// RFC 5766 Section 14.6.
type EvenPort struct {
	ReserveAdditional bool
}

// Type returns AttrEvenPort.
func (a *EvenPort) Type() AttrType { return AttrEvenPort }

// Name returns the human label of the attribute type.
func (a *EvenPort) Name() string { return AttrEvenPort.String() }

// DataLength returns 1.
func (a *EvenPort) DataLength() uint16 { return evenPortSize }

func (a *EvenPort) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	var b byte
	if a.ReserveAdditional {
		b = 0x80
	}
	return append(dst, b), nil
}

func (a *EvenPort) decodeBody(v []byte, _ TransactionID) error {
	if err := CheckSize(AttrEvenPort, len(v), evenPortSize); err != nil {
		return err
	}
	a.ReserveAdditional = v[0]&0x80 != 0
	return nil
}

// DontFragment implements DONT-FRAGMENT attribute. It carries no value:
// presence asks the server to set the DF bit on relayed packets.
//
// RFC 5766 Section 14.8.
type DontFragment struct{}

// Type returns AttrDontFragment.
func (a *DontFragment) Type() AttrType { return AttrDontFragment }

// Name returns the human label of the attribute type.
func (a *DontFragment) Name() string { return AttrDontFragment.String() }

// DataLength returns 0.
func (a *DontFragment) DataLength() uint16 { return 0 }

func (a *DontFragment) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	return dst, nil
}

func (a *DontFragment) decodeBody(v []byte, _ TransactionID) error {
	return CheckSize(AttrDontFragment, len(v), 0)
}
