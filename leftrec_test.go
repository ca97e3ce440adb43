package leftrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanExtend(t *testing.T) {
	s := Span{4, 6}
	assert.Equal(t, Span{2, 6}, s.Extend(Span{2, 3}))
	assert.Equal(t, Span{4, 9}, s.Extend(Span{5, 9}))
	assert.Equal(t, Span{5, 9}, Span{}.Extend(Span{5, 9}))
	assert.Equal(t, uint64(2), s.Len())
	assert.Equal(t, "(4…6)", s.String())
}
