package vars

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestBookingCounts(t *testing.T) {
	t.Cleanup(func() { SetBookingCounts(nil) })

	assert.Nil(t, GetBookingCounts())
	assert.Equal(t, int64(0), GetBookingCount("1"))

	counts := map[string]int64{"1": 4, "3": 9}
	SetBookingCounts(counts)
	counts["1"] = 100

	assert.Equal(t, int64(4), GetBookingCount("1"))
	assert.Equal(t, int64(9), GetBookingCount("3"))
	assert.Equal(t, int64(0), GetBookingCount("7"))

	SetBookingCounts(map[string]int64{})
	assert.Nil(t, GetBookingCounts())
}
