package scanner

import (
	"testing"

	"github.com/npillmayer/leftrec"
	"github.com/stretchr/testify/assert"
)

func TestDefaultToken(t *testing.T) {
	tok := MakeDefaultToken(7, "->", leftrec.Span{2, 4})
	assert.Equal(t, leftrec.TokType(7), tok.TokType())
	assert.Equal(t, "->", tok.Lexeme())
	assert.Equal(t, leftrec.Span{2, 4}, tok.Span())
	assert.Equal(t, `<7|"->"(2…4)>`, tok.String())
}
