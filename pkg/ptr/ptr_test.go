package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrCopiesValue(t *testing.T) {
	v := 42
	p := Ptr(v)
	v = 7

	assert.Equal(t, 42, *p)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "", Value[string](nil))
	assert.Equal(t, "salon", Value(Ptr("salon")))
}
