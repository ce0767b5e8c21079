package stunattr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode is code for ERROR-CODE attribute.
type ErrorCode int

// Possible error codes.
const (
	CodeTryAlternate     ErrorCode = 300
	CodeBadRequest       ErrorCode = 400
	CodeUnauthorised     ErrorCode = 401
	CodeUnknownAttribute ErrorCode = 420
	CodeStaleNonce       ErrorCode = 438
	CodeRoleConflict     ErrorCode = 487
	CodeServerError      ErrorCode = 500
)

// Error codes from RFC 5766.
//
// RFC 5766 Section 15.
const (
	CodeForbidden             ErrorCode = 403
	CodeAllocMismatch         ErrorCode = 437
	CodeWrongCredentials      ErrorCode = 441
	CodeUnsupportedTransProto ErrorCode = 442
	CodeAllocQuotaReached     ErrorCode = 486
	CodeInsufficientCapacity  ErrorCode = 508
)

var errorReasons = map[ErrorCode]string{ //nolint:gochecknoglobals
	CodeTryAlternate:     "Try Alternate",
	CodeBadRequest:       "Bad Request",
	CodeUnauthorised:     "Unauthorised",
	CodeUnknownAttribute: "Unknown Attribute",
	CodeStaleNonce:       "Stale Nonce",
	CodeServerError:      "Server Error",
	CodeRoleConflict:     "Role Conflict",

	CodeForbidden:             "Forbidden",
	CodeAllocMismatch:         "Allocation Mismatch",
	CodeWrongCredentials:      "Wrong Credentials",
	CodeUnsupportedTransProto: "Unsupported Transport Protocol",
	CodeAllocQuotaReached:     "Allocation Quota Reached",
	CodeInsufficientCapacity:  "Insufficient Capacity",
}

// Reason returns recommended reason string.
func (c ErrorCode) Reason() string {
	reason, ok := errorReasons[c]
	if !ok {
		return "Unknown Error"
	}
	return reason
}

// constants for ERROR-CODE encoding.
const (
	errorCodeClassByte   = 2
	errorCodeNumberByte  = 3
	errorCodeReasonStart = 4
	errorCodeReasonMaxB  = 763
	errorCodeModulo      = 100
	errorCodeClassMin    = 3
	errorCodeClassMax    = 6
)

// ErrorCodeAttribute implements ERROR-CODE attribute: two reserved
// bytes, the class (code divided by 100, legal range 3 to 6), the
// number (code modulo 100) and a variable UTF-8 reason phrase.
//
// RFC 5389 Section 15.6.
type ErrorCodeAttribute struct {
	Code   ErrorCode
	Reason []byte
}

// NewErrorCode returns ERROR-CODE attribute for code with its
// recommended reason phrase.
func NewErrorCode(code ErrorCode) *ErrorCodeAttribute {
	return &ErrorCodeAttribute{Code: code, Reason: []byte(code.Reason())}
}

// Type returns AttrErrorCode.
func (a *ErrorCodeAttribute) Type() AttrType { return AttrErrorCode }

// Name returns the human label of the attribute type.
func (a *ErrorCodeAttribute) Name() string { return AttrErrorCode.String() }

// DataLength returns 4 plus current reason phrase length.
func (a *ErrorCodeAttribute) DataLength() uint16 {
	return uint16(errorCodeReasonStart + len(a.Reason))
}

func (a *ErrorCodeAttribute) String() string {
	return fmt.Sprintf("%d: %s", a.Code, a.Reason)
}

func (a *ErrorCodeAttribute) appendBody(dst []byte, _ TransactionID) ([]byte, error) {
	class := int(a.Code) / errorCodeModulo // hundred digit
	number := int(a.Code) % errorCodeModulo
	if class < errorCodeClassMin || class > errorCodeClassMax {
		return nil, errors.Errorf("invalid error class %d", class)
	}
	if len(a.Reason) > errorCodeReasonMaxB {
		return nil, errors.Errorf("invalid reason length %d", len(a.Reason))
	}
	b := make([]byte, errorCodeReasonStart, errorCodeReasonStart+len(a.Reason))
	b[errorCodeClassByte] = byte(class)
	b[errorCodeNumberByte] = byte(number)
	b = append(b, a.Reason...)
	return append(dst, b...), nil
}

func (a *ErrorCodeAttribute) decodeBody(v []byte, _ TransactionID) error {
	if len(v) < errorCodeReasonStart {
		return newAttrDecodeErr("error-code",
			fmt.Sprintf("buffer length %d is less than %d (expected header size)",
				len(v), errorCodeReasonStart,
			),
		)
	}
	var (
		class  = int(v[errorCodeClassByte])
		number = int(v[errorCodeNumberByte])
	)
	if class < errorCodeClassMin || class > errorCodeClassMax {
		return newDecodeErr("error-code", "class",
			fmt.Sprintf("bad value %d", class),
		)
	}
	if number >= errorCodeModulo {
		return newDecodeErr("error-code", "number",
			fmt.Sprintf("bad value %d", number),
		)
	}
	a.Code = ErrorCode(class*errorCodeModulo + number)
	a.Reason = append(a.Reason[:0], v[errorCodeReasonStart:]...)
	return nil
}
