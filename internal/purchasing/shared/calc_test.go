package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 60.0, LineTotal(3, 20))
	assert.Equal(t, 50.0, LineTotal(1, 50))
	assert.Equal(t, 0.0, LineTotal(0, 99.99))
	assert.InDelta(t, 201.04, LineTotal(4, 50.26), 1e-9)
}

func TestStockedQty(t *testing.T) {
	assert.Equal(t, 3.0, StockedQty(3, 0))
	assert.Equal(t, 2.0, StockedQty(3, 1))
	assert.Equal(t, -1.0, StockedQty(0, 1))
}

func TestTotalDue(t *testing.T) {
	assert.Equal(t, 115.0, TotalDue(100, 10, 5))
	assert.Equal(t, 0.0, TotalDue(0, 0, 0))
	assert.InDelta(t, 222.15, TotalDue(201.04, 16.08, 5.03), 1e-9)
}
