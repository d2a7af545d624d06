package solana

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSeedTooLong is returned when a seed exceeds 32 bytes.
	ErrSeedTooLong = errors.New("max seed length exceeded")

	// ErrTooManySeeds is returned when a derivation has more than 16 seeds,
	// including the bump.
	ErrTooManySeeds = errors.New("too many seeds")

	// ErrInvalidPublicKey indicates a single derivation attempt landed on the
	// curve. Derive treats it as a signal to try the next bump.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrDerivationExhausted is returned when no bump in [0, 255] produces an
	// off-curve address.
	ErrDerivationExhausted = errors.New("no viable bump seed found")

	// ErrMissingAccountInput is returned when a schema references an input
	// the caller did not provide, or provided in the wrong shape.
	ErrMissingAccountInput = errors.New("missing account input")

	// ErrUnresolvedSlot is returned when an instruction is assembled with an
	// account slot that has no address bound to it.
	ErrUnresolvedSlot = errors.New("unresolved account slot")

	// ErrArgumentOutOfRange is returned when an instruction argument falls
	// outside the domain of its field.
	ErrArgumentOutOfRange = errors.New("argument out of range")

	// ErrInvalidSchema indicates a broken schema table (unknown slot
	// reference, dependency cycle, duplicate slot name).
	ErrInvalidSchema = errors.New("invalid schema")
)

// SchemaError attaches the instruction kind and account slot to a resolution,
// derivation or assembly failure.
type SchemaError struct {
	Instruction string
	Slot        string
	Err         error
}

func (e *SchemaError) Error() string {
	var prefix string
	switch {
	case e.Instruction != "" && e.Slot != "":
		prefix = fmt.Sprintf("%s: slot %q", e.Instruction, e.Slot)
	case e.Instruction != "":
		prefix = e.Instruction
	case e.Slot != "":
		prefix = fmt.Sprintf("slot %q", e.Slot)
	default:
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

// Unwrap allows errors.Is against the sentinel errors above.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *SchemaError) Cause() error {
	return e.Err
}

// FieldError attaches the instruction kind and argument field to an encoding
// failure.
type FieldError struct {
	Instruction string
	Field       string
	Reason      string
	Err         error
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: field %q: %v", e.Instruction, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: field %q: %v: %s", e.Instruction, e.Field, e.Err, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Cause() error {
	return e.Err
}

func newSchemaError(instruction, slot string, err error) error {
	return &SchemaError{
		Instruction: instruction,
		Slot:        slot,
		Err:         err,
	}
}
