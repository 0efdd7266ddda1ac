package shared

import (
	"math"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 50.26, 201.04, 0.1234567891, 123456789.987654321} {
		num := Numeric(v)
		require.True(t, num.Valid)
		assert.InDelta(t, v, Float(num), 1e-9, "value %v survives binding without truncation", v)
	}
}

func TestNumericNonFinite(t *testing.T) {
	num := Numeric(math.NaN())
	assert.True(t, num.Valid, "NaN binds as numeric NaN, not NULL")
	assert.True(t, num.NaN)

	num = Numeric(math.Inf(1))
	assert.True(t, num.Valid)
	assert.Equal(t, pgtype.Infinity, num.InfinityModifier)

	num = Numeric(math.Inf(-1))
	assert.True(t, num.Valid)
	assert.Equal(t, pgtype.NegativeInfinity, num.InfinityModifier)
}

func TestFloatNull(t *testing.T) {
	assert.Equal(t, 0.0, Float(pgtype.Numeric{}))
}

func TestTextHelpers(t *testing.T) {
	assert.False(t, Text(nil).Valid)
	s := "hello"
	bound := Text(&s)
	require.True(t, bound.Valid)
	assert.Equal(t, "hello", bound.String)

	assert.Nil(t, TextPtr(pgtype.Text{}))
	back := TextPtr(bound)
	require.NotNil(t, back)
	assert.Equal(t, "hello", *back)
}

func TestDateHelpers(t *testing.T) {
	assert.False(t, Date(nil).Valid)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bound := Date(&day)
	require.True(t, bound.Valid)

	assert.Nil(t, DatePtr(pgtype.Date{}))
	back := DatePtr(bound)
	require.NotNil(t, back)
	assert.True(t, back.Equal(day))
}
