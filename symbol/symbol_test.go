package symbol_test

import (
	"testing"

	"github.com/edgebreak/mesh/symbol"
	"github.com/stretchr/testify/assert"
)

func TestStringMnemonics(t *testing.T) {
	cases := map[symbol.Symbol]string{
		symbol.C: "C",
		symbol.L: "L",
		symbol.E: "E",
		symbol.R: "R",
		symbol.S: "S",
		symbol.H: "H",
		symbol.M: "M",
	}
	for sym, want := range cases {
		assert.Equal(t, want, sym.String())
	}
}

func TestValid(t *testing.T) {
	assert.True(t, symbol.C.Valid())
	assert.True(t, symbol.M.Valid())
	assert.False(t, symbol.Symbol(7).Valid())
}
