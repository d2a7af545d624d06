package binary

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	cosmath "cosmossdk.io/math"
	bin "github.com/gagliardetto/binary"

	"github.com/code-payments/ixkit/pkg/solana"
)

// AnchorDiscriminator returns the 8 byte instruction discriminator Anchor
// programs dispatch on: the first 8 bytes of sha256("global:<name>").
func AnchorDiscriminator(name string) [8]byte {
	var out [8]byte
	hash := sha256.Sum256([]byte(fmt.Sprintf("global:%s", name)))
	copy(out[:], hash[:8])
	return out
}

// Encoder writes instruction arguments in Borsh layout with bounds checks on
// every field.
//
// The first failing field is kept and every later write is a no-op, so an
// args type can write all of its fields and check the error once in Bytes.
type Encoder struct {
	instruction string
	buf         *bytes.Buffer
	enc         *bin.Encoder
	err         error
}

// NewEncoder returns an Encoder for the named instruction kind. The name is
// only used to annotate errors.
func NewEncoder(instruction string) *Encoder {
	buf := new(bytes.Buffer)
	return &Encoder{
		instruction: instruction,
		buf:         buf,
		enc:         bin.NewBorshEncoder(buf),
	}
}

func (e *Encoder) fail(field, reason string, err error) {
	if e.err != nil {
		return
	}
	e.err = &solana.FieldError{
		Instruction: e.instruction,
		Field:       field,
		Reason:      reason,
		Err:         err,
	}
}

func (e *Encoder) write(field string, fn func() error) {
	if e.err != nil {
		return
	}
	if err := fn(); err != nil {
		e.fail(field, err.Error(), solana.ErrArgumentOutOfRange)
	}
}

// Raw writes fixed bytes as-is, with no length prefix. Used for
// discriminators and instruction tags.
func (e *Encoder) Raw(b []byte) *Encoder {
	e.write("raw", func() error { return e.enc.WriteBytes(b, false) })
	return e
}

// Discriminator writes an 8 byte Anchor discriminator.
func (e *Encoder) Discriminator(d [8]byte) *Encoder {
	return e.Raw(d[:])
}

func (e *Encoder) U8(field string, v uint8) *Encoder {
	e.write(field, func() error { return e.enc.WriteUint8(v) })
	return e
}

func (e *Encoder) U16(field string, v uint16) *Encoder {
	e.write(field, func() error { return e.enc.WriteUint16(v, binary.LittleEndian) })
	return e
}

func (e *Encoder) U32(field string, v uint32) *Encoder {
	e.write(field, func() error { return e.enc.WriteUint32(v, binary.LittleEndian) })
	return e
}

func (e *Encoder) U64(field string, v uint64) *Encoder {
	e.write(field, func() error { return e.enc.WriteUint64(v, binary.LittleEndian) })
	return e
}

func (e *Encoder) Bool(field string, v bool) *Encoder {
	e.write(field, func() error { return e.enc.WriteBool(v) })
	return e
}

// Amount writes an integer amount as a u64. Values outside [0, 2^64-1] fail
// with solana.ErrArgumentOutOfRange. No decimal scaling is applied.
func (e *Encoder) Amount(field string, v cosmath.Int) *Encoder {
	if e.err != nil {
		return e
	}

	switch {
	case v.IsNil():
		e.fail(field, "amount not set", solana.ErrArgumentOutOfRange)
	case v.IsNegative():
		e.fail(field, fmt.Sprintf("negative amount %s", v), solana.ErrArgumentOutOfRange)
	case !v.IsUint64():
		e.fail(field, fmt.Sprintf("amount %s exceeds %d", v, uint64(math.MaxUint64)), solana.ErrArgumentOutOfRange)
	default:
		e.U64(field, v.Uint64())
	}
	return e
}

// Enum writes a variant ordinal. The ordinal must be below the number of
// declared variants.
func (e *Encoder) Enum(field string, ordinal, variants uint8) *Encoder {
	if ordinal >= variants {
		e.fail(field, fmt.Sprintf("variant %d of %d", ordinal, variants), solana.ErrArgumentOutOfRange)
		return e
	}
	return e.U8(field, ordinal)
}

// Option writes the presence byte of an optional field. The caller writes the
// value when present is true.
func (e *Encoder) Option(field string, present bool) *Encoder {
	e.write(field, func() error { return e.enc.WriteOption(present) })
	return e
}

// String writes a u32 length prefix followed by the UTF-8 bytes. maxLen is in
// bytes; zero means unbounded.
func (e *Encoder) String(field, s string, maxLen int) *Encoder {
	if e.err != nil {
		return e
	}

	if !utf8.ValidString(s) {
		e.fail(field, "invalid utf-8", solana.ErrArgumentOutOfRange)
		return e
	}
	if maxLen > 0 && len(s) > maxLen {
		e.fail(field, fmt.Sprintf("%d bytes exceeds max of %d", len(s), maxLen), solana.ErrArgumentOutOfRange)
		return e
	}

	e.U32(field, uint32(len(s)))
	e.write(field, func() error { return e.enc.WriteBytes([]byte(s), false) })
	return e
}

// Key writes a 32 byte address.
func (e *Encoder) Key(field string, key ed25519.PublicKey) *Encoder {
	if len(key) != ed25519.PublicKeySize {
		e.fail(field, fmt.Sprintf("key is %d bytes", len(key)), solana.ErrArgumentOutOfRange)
		return e
	}
	return e.Raw(key)
}

// OptionalKey writes option<key>; a nil key is None.
func (e *Encoder) OptionalKey(field string, key ed25519.PublicKey) *Encoder {
	if key == nil {
		return e.Option(field, false)
	}
	return e.Option(field, true).Key(field, key)
}

// OptionalU64 writes option<u64>; a nil value is None.
func (e *Encoder) OptionalU64(field string, v *uint64) *Encoder {
	if v == nil {
		return e.Option(field, false)
	}
	return e.Option(field, true).U64(field, *v)
}

// OptionalU8 writes option<u8>; a nil value is None.
func (e *Encoder) OptionalU8(field string, v *uint8) *Encoder {
	if v == nil {
		return e.Option(field, false)
	}
	return e.Option(field, true).U8(field, *v)
}

// Check fails the field with reason when ok is false. It covers constraints
// that span several fields, like creator shares adding up to 100.
func (e *Encoder) Check(field string, ok bool, reason string) *Encoder {
	if !ok {
		e.fail(field, reason, solana.ErrArgumentOutOfRange)
	}
	return e
}

// Err returns the first encoding failure, if any.
func (e *Encoder) Err() error {
	return e.err
}

// Bytes returns the encoded payload or the first encoding failure.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}
