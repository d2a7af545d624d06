package testutil

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/ixkit/pkg/solana"
)

// AssertSchemaError verifies that err is a schema error for the provided slot
// caused by target.
func AssertSchemaError(t *testing.T, err error, slot string, target error) {
	require.Error(t, err)
	assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)

	var schemaErr *solana.SchemaError
	require.True(t, errors.As(err, &schemaErr), "expected a schema error, got %v", err)
	assert.Equal(t, slot, schemaErr.Slot)
}

// AssertFieldError verifies that err is an out of range argument error for the
// provided field.
func AssertFieldError(t *testing.T, err error, field string) {
	require.Error(t, err)
	assert.True(t, errors.Is(err, solana.ErrArgumentOutOfRange), "expected out of range, got %v", err)

	var fieldErr *solana.FieldError
	require.True(t, errors.As(err, &fieldErr), "expected a field error, got %v", err)
	assert.Equal(t, field, fieldErr.Field)
}
