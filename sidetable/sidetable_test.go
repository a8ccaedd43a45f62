package sidetable_test

import (
	"testing"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/history"
	"github.com/edgebreak/mesh/sidetable"
	"github.com/edgebreak/mesh/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndResolveHole(t *testing.T) {
	result := &compress.Result{
		History: []symbol.Symbol{symbol.C, symbol.S, symbol.H, symbol.E},
		Lengths: []int{3},
	}
	entries := sidetable.Build(result)
	require.Len(t, entries, 1)
	assert.Equal(t, sidetable.KindHole, entries[0].Kind)
	assert.Equal(t, 1, entries[0].S)

	b64, pad := history.Encode(result.History)
	raw, err := history.Decode(b64, pad)
	require.NoError(t, err)

	resolved, err := sidetable.Resolve(raw, entries)
	require.NoError(t, err)
	assert.Equal(t, result.History, resolved)
}

func TestResolveAmbiguousWithoutEntryIsPlainS(t *testing.T) {
	raw := []history.RawSymbol{history.RawC, history.RawAmbiguous, history.RawE}
	resolved, err := sidetable.Resolve(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []symbol.Symbol{symbol.C, symbol.S, symbol.E}, resolved)
}
