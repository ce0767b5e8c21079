// SPDX-FileCopyrightText: 2025 The Signalpath community <https://signalpath.dev>
// SPDX-License-Identifier: MIT

//go:build !js
// +build !js

package stunattr

import (
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
)

func TestDecoder(t *testing.T) {
	lf := logging.NewDefaultLoggerFactory()
	lf.DefaultLogLevel = logging.LogLevelError
	dec := NewDecoder(&DecoderConfig{LoggerFactory: lf})

	var tid TransactionID
	buf, err := Attributes{
		NewSoftware("test"),
		&UseCandidate{},
	}.EncodeAll(tid)
	assert.NoError(t, err)
	buf = append(buf, 0x80, 0xFF, 0x00, 0x00)

	attrs, err := dec.DecodeAll(buf, tid)
	assert.NoError(t, err)
	assert.Len(t, attrs, 3)

	// Same results as the silent package-level function.
	plain, err := DecodeAll(buf, tid)
	assert.NoError(t, err)
	assert.Len(t, plain, len(attrs))
	for i := range attrs {
		assert.True(t, Equal(attrs[i], plain[i]))
	}
}

func TestDecoder_Defaults(t *testing.T) {
	assert.NotNil(t, NewDecoder(nil))
	assert.NotNil(t, NewDecoder(&DecoderConfig{}))
}

func TestDecoder_StopsOnError(t *testing.T) {
	lf := logging.NewDefaultLoggerFactory()
	lf.DefaultLogLevel = logging.LogLevelError
	dec := NewDecoder(&DecoderConfig{LoggerFactory: lf})

	buf := []byte{0x00, 0xFF, 0x00, 0x00}
	attrs, err := dec.DecodeAll(buf, TransactionID{})
	var unkErr *UnknownRequiredAttrError
	assert.ErrorAs(t, err, &unkErr)
	assert.Empty(t, attrs)
}
