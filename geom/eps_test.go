package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsEq(t *testing.T) {
	eps := Eps(1e-10)
	assert.True(t, eps.Eq(1, 1+1e-11))
	assert.True(t, eps.Eq(0, -1e-11))
	assert.False(t, eps.Eq(1, 1+1e-9))
}

func TestEpsSign(t *testing.T) {
	eps := Eps(1e-10)
	assert.Equal(t, 1, eps.Sign(0.5))
	assert.Equal(t, -1, eps.Sign(-0.5))
	assert.Equal(t, 0, eps.Sign(0))
	// The whole band (-e, e) collapses to zero.
	assert.Equal(t, 0, eps.Sign(1e-11))
	assert.Equal(t, 0, eps.Sign(-1e-11))
}

func TestEpsLess(t *testing.T) {
	eps := Eps(1e-10)
	assert.True(t, eps.Less(1, 2))
	assert.False(t, eps.Less(2, 1))
	// A gap within the tolerance is a tie, not an ordering.
	assert.False(t, eps.Less(1, 1+1e-11))
}

func TestEpsLessEq(t *testing.T) {
	eps := Eps(1e-10)
	assert.True(t, eps.LessEq(1, 2))
	assert.True(t, eps.LessEq(1, 1))
	// b may undershoot a by up to the tolerance.
	assert.True(t, eps.LessEq(1+1e-11, 1))
	assert.False(t, eps.LessEq(2, 1))
}
