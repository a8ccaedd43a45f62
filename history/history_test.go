package history_test

import (
	"testing"

	"github.com/edgebreak/mesh/history"
	"github.com/edgebreak/mesh/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	hist := []symbol.Symbol{symbol.C, symbol.C, symbol.C, symbol.S, symbol.S, symbol.L, symbol.E, symbol.E, symbol.M}

	b64, pad := history.Encode(hist)
	assert.GreaterOrEqual(t, pad, 0)
	assert.Less(t, pad, 8)

	raw, err := history.Decode(b64, pad)
	require.NoError(t, err)
	require.Len(t, raw, len(hist))

	want := []history.RawSymbol{
		history.RawC, history.RawC, history.RawC,
		history.RawAmbiguous, history.RawAmbiguous,
		history.RawL,
		history.RawE, history.RawE,
		history.RawAmbiguous,
	}
	assert.Equal(t, want, raw)
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	_, err := history.Decode("not valid base64!!", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, history.ErrInvalidBase64)
}
