package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	v := int64(5)
	p := Ptr(v)

	assert.Equal(t, int64(5), *p)
	assert.NotSame(t, &v, p)
}
