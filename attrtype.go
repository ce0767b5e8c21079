// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import "fmt"

// AttrType is attribute type.
type AttrType uint16

// Required returns true if type is from comprehension-required range
// (0x0000-0x7FFF).
func (t AttrType) Required() bool {
	return t <= 0x7FFF
}

// Optional returns true if type is from comprehension-optional range
// (0x8000-0xFFFF).
func (t AttrType) Optional() bool {
	return t >= 0x8000
}

// Value returns uint16 representation of attribute type.
func (t AttrType) Value() uint16 {
	return uint16(t)
}

// Attributes from RFC 5389, RFC 5766 (TURN), RFC 8445 (ICE) and the
// classic RFC 3489 set.
const (
	AttrMappedAddress      AttrType = 0x0001 // MAPPED-ADDRESS
	AttrResponseAddress    AttrType = 0x0002 // RESPONSE-ADDRESS
	AttrChangeRequest      AttrType = 0x0003 // CHANGE-REQUEST
	AttrSourceAddress      AttrType = 0x0004 // SOURCE-ADDRESS
	AttrChangedAddress     AttrType = 0x0005 // CHANGED-ADDRESS
	AttrUsername           AttrType = 0x0006 // USERNAME
	AttrPassword           AttrType = 0x0007 // PASSWORD
	AttrMessageIntegrity   AttrType = 0x0008 // MESSAGE-INTEGRITY
	AttrErrorCode          AttrType = 0x0009 // ERROR-CODE
	AttrUnknownAttributes  AttrType = 0x000A // UNKNOWN-ATTRIBUTES
	AttrReflectedFrom      AttrType = 0x000B // REFLECTED-FROM
	AttrChannelNumber      AttrType = 0x000C // CHANNEL-NUMBER
	AttrLifetime           AttrType = 0x000D // LIFETIME
	AttrXORPeerAddress     AttrType = 0x0012 // XOR-PEER-ADDRESS
	AttrData               AttrType = 0x0013 // DATA
	AttrRealm              AttrType = 0x0014 // REALM
	AttrNonce              AttrType = 0x0015 // NONCE
	AttrXORRelayedAddress  AttrType = 0x0016 // XOR-RELAYED-ADDRESS
	AttrEvenPort           AttrType = 0x0018 // EVEN-PORT
	AttrRequestedTransport AttrType = 0x0019 // REQUESTED-TRANSPORT
	AttrDontFragment       AttrType = 0x001A // DONT-FRAGMENT
	AttrXORMappedAddress   AttrType = 0x0020 // XOR-MAPPED-ADDRESS
	AttrXOROnly            AttrType = 0x0021 // XOR-ONLY
	AttrReservationToken   AttrType = 0x0022 // RESERVATION-TOKEN
	AttrPriority           AttrType = 0x0024 // PRIORITY
	AttrUseCandidate       AttrType = 0x0025 // USE-CANDIDATE
	AttrSoftware           AttrType = 0x8022 // SOFTWARE
	AttrAlternateServer    AttrType = 0x8023 // ALTERNATE-SERVER
	AttrFingerprint        AttrType = 0x8028 // FINGERPRINT
	AttrICEControlled      AttrType = 0x8029 // ICE-CONTROLLED
	AttrICEControlling     AttrType = 0x802A // ICE-CONTROLLING
)

// attrNames is the human name table. It has no wire effect: String()
// is debug output only and never participates in encoding or equality.
var attrNames = map[AttrType]string{ //nolint:gochecknoglobals
	AttrMappedAddress:      "MAPPED-ADDRESS",
	AttrResponseAddress:    "RESPONSE-ADDRESS",
	AttrChangeRequest:      "CHANGE-REQUEST",
	AttrSourceAddress:      "SOURCE-ADDRESS",
	AttrChangedAddress:     "CHANGED-ADDRESS",
	AttrUsername:           "USERNAME",
	AttrPassword:           "PASSWORD",
	AttrMessageIntegrity:   "MESSAGE-INTEGRITY",
	AttrErrorCode:          "ERROR-CODE",
	AttrUnknownAttributes:  "UNKNOWN-ATTRIBUTES",
	AttrReflectedFrom:      "REFLECTED-FROM",
	AttrChannelNumber:      "CHANNEL-NUMBER",
	AttrLifetime:           "LIFETIME",
	AttrXORPeerAddress:     "XOR-PEER-ADDRESS",
	AttrData:               "DATA",
	AttrRealm:              "REALM",
	AttrNonce:              "NONCE",
	AttrXORRelayedAddress:  "XOR-RELAYED-ADDRESS",
	AttrEvenPort:           "EVEN-PORT",
	AttrRequestedTransport: "REQUESTED-TRANSPORT",
	AttrDontFragment:       "DONT-FRAGMENT",
	AttrXORMappedAddress:   "XOR-MAPPED-ADDRESS",
	AttrXOROnly:            "XOR-ONLY",
	AttrReservationToken:   "RESERVATION-TOKEN",
	AttrPriority:           "PRIORITY",
	AttrUseCandidate:       "USE-CANDIDATE",
	AttrSoftware:           "SOFTWARE",
	AttrAlternateServer:    "ALTERNATE-SERVER",
	AttrFingerprint:        "FINGERPRINT",
	AttrICEControlled:      "ICE-CONTROLLED",
	AttrICEControlling:     "ICE-CONTROLLING",
}

func (t AttrType) String() string {
	s, ok := attrNames[t]
	if !ok {
		// Just return hex representation of unknown attribute type.
		return fmt.Sprintf("0x%04x", uint16(t))
	}
	return s
}

// attrFactories maps each wired attribute type to a constructor of its
// zero variant. Built once, read-only afterwards, so concurrent lookups
// from parallel decoders need no locking.
var attrFactories = map[AttrType]func(AttrType) Attribute{ //nolint:gochecknoglobals
	AttrMappedAddress:      newAddressAttr,
	AttrResponseAddress:    newAddressAttr,
	AttrSourceAddress:      newAddressAttr,
	AttrChangedAddress:     newAddressAttr,
	AttrReflectedFrom:      newAddressAttr,
	AttrAlternateServer:    newAddressAttr,
	AttrXORMappedAddress:   newXORAddressAttr,
	AttrXORPeerAddress:     newXORAddressAttr,
	AttrXORRelayedAddress:  newXORAddressAttr,
	AttrUsername:           newTextAttr,
	AttrPassword:           newTextAttr,
	AttrRealm:              newTextAttr,
	AttrNonce:              newTextAttr,
	AttrSoftware:           newTextAttr,
	AttrChangeRequest:      func(AttrType) Attribute { return new(ChangeRequest) },
	AttrMessageIntegrity:   func(AttrType) Attribute { return new(MessageIntegrity) },
	AttrErrorCode:          func(AttrType) Attribute { return new(ErrorCodeAttribute) },
	AttrUnknownAttributes:  func(AttrType) Attribute { return new(UnknownAttributes) },
	AttrChannelNumber:      func(AttrType) Attribute { return new(ChannelNumber) },
	AttrLifetime:           func(AttrType) Attribute { return new(Lifetime) },
	AttrData:               func(AttrType) Attribute { return new(Data) },
	AttrEvenPort:           func(AttrType) Attribute { return new(EvenPort) },
	AttrRequestedTransport: func(AttrType) Attribute { return new(RequestedTransport) },
	AttrDontFragment:       func(AttrType) Attribute { return new(DontFragment) },
	AttrReservationToken:   func(AttrType) Attribute { return new(ReservationToken) },
	AttrPriority:           func(AttrType) Attribute { return new(Priority) },
	AttrUseCandidate:       func(AttrType) Attribute { return new(UseCandidate) },
	AttrFingerprint:        func(AttrType) Attribute { return new(Fingerprint) },
	AttrICEControlled:      func(AttrType) Attribute { return new(ICEControlled) },
	AttrICEControlling:     func(AttrType) Attribute { return new(ICEControlling) },
}

// errUnknownAttrType marks a type code absent from the registry. It
// never escapes the package: DecodeAttribute translates it into the
// comprehension-required or comprehension-optional outcome.
var errUnknownAttrType Error = "attribute type is not registered"

// newAttribute resolves t against the registry and returns a fresh zero
// variant ready for decodeBody. A registered type with no codec wired
// yields *UnsupportedAttrTypeError.
func newAttribute(t AttrType) (Attribute, error) {
	if f, ok := attrFactories[t]; ok {
		return f(t), nil
	}
	if _, known := attrNames[t]; known {
		return nil, &UnsupportedAttrTypeError{Type: t}
	}
	return nil, errUnknownAttrType
}
