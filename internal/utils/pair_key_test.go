package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("admin-1", "09876543"), PairKey("09876543", "admin-1"))
	assert.Equal(t, "8:09876543:admin-1", PairKey("admin-1", "09876543"))
}

func TestPairKeyDistinguishesPairs(t *testing.T) {
	assert.NotEqual(t, PairKey("a", "b"), PairKey("a", "c"))
	assert.NotEqual(t, PairKey("a", "b"), PairKey("b", "c"))
}

func TestPairKeyIdsContainingSeparatorCannotCollide(t *testing.T) {
	assert.NotEqual(t, PairKey("a:b", "c"), PairKey("a", "b:c"))
	assert.NotEqual(t, PairKey("a:", "b"), PairKey("a", ":b"))
}
