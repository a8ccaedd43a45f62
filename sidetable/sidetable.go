// Package sidetable defines the hole/merge side-table entries carried by
// the compressed container's "ebt" record, and the algorithm that
// disambiguates history's shared S/H/M bit-code against them.
package sidetable

import (
	"errors"

	"github.com/edgebreak/mesh/compress"
	"github.com/edgebreak/mesh/history"
	"github.com/edgebreak/mesh/symbol"
)

// Sentinel errors for side-table resolution.
var (
	// ErrEntryMismatch indicates an ambiguous raw symbol had no matching
	// side-table entry at its running plain-S count.
	ErrEntryMismatch = errors.New("sidetable: no entry matches running S count")

	// ErrPositionOutOfRange indicates a merge entry's stack position
	// could not be satisfied.
	ErrPositionOutOfRange = errors.New("sidetable: merge position out of range")
)

// Kind distinguishes the two entry payload shapes.
type Kind byte

const (
	KindHole Kind = iota
	KindMerge
)

// Entry is one "ebt" record: either a Hole or a Merge descriptor. S is
// the running count of plain S symbols seen at the point the entry was
// recorded, used to disambiguate the shared S/H/M bit-code in order.
type Entry struct {
	Kind   Kind
	S      int
	Length int

	// Position and Offset are populated only for Kind == KindMerge.
	Position int
	Offset   int
}

// Build turns a compression Result's Lengths/MTable into the ordered
// side-table entry list, interleaved in the order their H/M symbols
// occurred in History.
func Build(r *compress.Result) []Entry {
	entries := make([]Entry, 0, len(r.Lengths)+len(r.MTable))
	plainS := 0
	hIdx, mIdx := 0, 0
	for _, sym := range r.History {
		switch sym {
		case symbol.S:
			plainS++
		case symbol.H:
			entries = append(entries, Entry{Kind: KindHole, S: plainS, Length: r.Lengths[hIdx]})
			hIdx++
		case symbol.M:
			mt := r.MTable[mIdx]
			entries = append(entries, Entry{
				Kind:     KindMerge,
				S:        plainS,
				Position: mt.Position,
				Offset:   mt.Offset,
				Length:   mt.Length,
			})
			mIdx++
		}
	}
	return entries
}

// Resolve walks raw (as produced by history.Decode) and, for every
// RawAmbiguous occurrence, consumes the next side-table entry whose S
// field matches the running plain-S count, yielding H or M; any
// RawAmbiguous with no matching entry is a plain S.
func Resolve(raw []history.RawSymbol, entries []Entry) ([]symbol.Symbol, error) {
	out := make([]symbol.Symbol, 0, len(raw))
	plainS := 0
	ei := 0
	for _, r := range raw {
		switch r {
		case history.RawC:
			out = append(out, symbol.C)
		case history.RawR:
			out = append(out, symbol.R)
		case history.RawL:
			out = append(out, symbol.L)
		case history.RawE:
			out = append(out, symbol.E)
		case history.RawAmbiguous:
			if ei < len(entries) && entries[ei].S == plainS {
				switch entries[ei].Kind {
				case KindHole:
					out = append(out, symbol.H)
				case KindMerge:
					out = append(out, symbol.M)
				}
				ei++
			} else {
				out = append(out, symbol.S)
				plainS++
			}
		}
	}
	return out, nil
}
