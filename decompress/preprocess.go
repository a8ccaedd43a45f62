package decompress

import (
	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/symbol"
)

// stackEntry is one frame on the preprocessing compute-stack: the active
// front size e and running plain-S count s at the moment the S symbol
// that pushed it was seen.
type stackEntry struct {
	e, s int
}

// preprocessed holds everything the generation pass needs: the resolved
// offset for each S (keyed by that S's running plain-S count) and the
// boundary length recorded for each component as it closed.
type preprocessed struct {
	offsets           map[int]int
	componentLengths  []int
}

func preprocess(hist []symbol.Symbol, lengths []int, mtable []compress.MTableEntry) (*preprocessed, error) {
	var (
		e, d, s int
		stack   []stackEntry
		hIdx    int
		mIdx    int
	)
	out := &preprocessed{offsets: make(map[int]int)}

	for _, sym := range hist {
		switch sym {
		case symbol.C:
			e--
		case symbol.R, symbol.L:
			e++
		case symbol.S:
			e--
			stack = append(stack, stackEntry{e: e, s: s})
			s++
			d++
		case symbol.H:
			if hIdx >= len(lengths) {
				return nil, ErrMalformedStream
			}
			e -= lengths[hIdx] + 1
			hIdx++
		case symbol.M:
			if mIdx >= len(mtable) {
				return nil, ErrMalformedStream
			}
			mt := mtable[mIdx]
			mIdx++
			if mt.Position < 0 || mt.Position >= len(stack) {
				return nil, ErrMalformedStream
			}
			e--
			entry := stack[mt.Position]
			stack = append(stack[:mt.Position], stack[mt.Position+1:]...)
			out.offsets[entry.s] = -entry.e - mt.Length
			if out.offsets[entry.s] < 0 {
				return nil, ErrNegativeOffset
			}
			d--
		case symbol.E:
			e += 3
			if d <= 0 {
				out.componentLengths = append(out.componentLengths, e)
				e, d = 0, 0
				continue
			}
			if len(stack) == 0 {
				return nil, ErrStackUnderflow
			}
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out.offsets[entry.s] = e - entry.e - 2
			if out.offsets[entry.s] < 0 {
				return nil, ErrNegativeOffset
			}
			d--
		}
	}

	return out, nil
}
