package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateInfoIsMaster(t *testing.T) {
	for _, n := range []int{11, 22, 33} {
		d := DateInfo{LifeNumber: n}
		assert.True(t, d.IsMaster(), "life number %d", n)
	}
	for _, n := range []int{1, 2, 9, 10, 12, 44} {
		d := DateInfo{LifeNumber: n}
		assert.False(t, d.IsMaster(), "life number %d", n)
	}
}
