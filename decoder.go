// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

package stunattr

import (
	"github.com/pion/logging"
)

// DecoderConfig configures a Decoder.
type DecoderConfig struct {
	// LoggerFactory to create the decoder logger from. Defaults to
	// logging.NewDefaultLoggerFactory().
	LoggerFactory logging.LoggerFactory
}

// Decoder decodes attribute blocks like DecodeAll while tracing what it
// sees. The plain package functions stay silent; use a Decoder where
// visibility into skipped unknown attributes and decode failures is
// wanted. A Decoder is stateless between calls and safe for concurrent
// use as long as the logger is.
type Decoder struct {
	log logging.LeveledLogger
}

// NewDecoder creates a Decoder from config.
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = &DecoderConfig{}
	}
	loggerFactory := config.LoggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	return &Decoder{
		log: loggerFactory.NewLogger("stunattr"),
	}
}

// DecodeAll decodes attributes from buf until it is exhausted, with the
// same results and failure policy as the package-level DecodeAll.
func (d *Decoder) DecodeAll(buf []byte, tid TransactionID) (Attributes, error) {
	var attrs Attributes
	for offset := 0; offset < len(buf); {
		attr, n, err := DecodeAttribute(buf[offset:], tid)
		if err != nil {
			d.log.Warnf("stopping at offset %d: %v", offset, err)
			return attrs, err
		}
		if raw, ok := attr.(*RawAttribute); ok && raw.Type().Optional() {
			d.log.Debugf("passing through unknown comprehension-optional attribute %s (%d bytes)",
				raw.Type(), raw.DataLength(),
			)
		} else {
			d.log.Tracef("decoded %s (%d bytes)", attr.Type(), attr.DataLength())
		}
		attrs = append(attrs, attr)
		offset += n
	}
	return attrs, nil
}
