package listsplit

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/listsplit/segment"
)

// A scanner holds the state of a single run of the breaker: the predicates
// to match, the input, the scan position and the segments found so far.
type scanner[S, E any] struct {
	seq     Sequence[S, E]       // capability to access the input
	preds   Predicates[E]        // delimiter to match
	input   S                    // sequence to break
	length  int                  // length of input
	pos     int                  // current scan position
	lastPos int                  // start of the pending text run
	segs    []segment.Segment[S] // result
}

// Scanners are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

// Every splitter owns a pool of scanners for its sequence type.
func newScannerPool[S, E any](seq Sequence[S, E]) *scannerPool {
	sp := &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &scanner[S, E]{seq: seq}
			return sc, nil
		})
	sp.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	sp.opool = pool.NewObjectPool(sp.ctx, factory, config)
	return sp
}

// borrowScanner returns a scanner, prepared for breaking input at preds.
func borrowScanner[S, E any](sp *scannerPool, seq Sequence[S, E], preds Predicates[E], input S) *scanner[S, E] {
	var sc *scanner[S, E]
	if o, err := sp.opool.BorrowObject(sp.ctx); err == nil {
		sc = o.(*scanner[S, E])
	} else {
		CT().Errorf("cannot borrow scanner from pool: %v", err)
		sc = &scanner[S, E]{seq: seq}
	}
	sc.preds = preds
	sc.input = input
	sc.length = seq.Len(input)
	return sc
}

// Clears the scanner and puts it back into the pool.
// The result list is handed out to the client, so it must not be re-used.
func (sc *scanner[S, E]) releaseInto(sp *scannerPool) {
	var null S
	sc.preds = nil
	sc.input = null
	sc.length = 0
	sc.pos, sc.lastPos = 0, 0
	sc.segs = nil
	_ = sp.opool.ReturnObject(sp.ctx, sc)
}

// Simple stringer for debugging purposes.
func (sc *scanner[S, E]) String() string {
	if sc == nil {
		return "[nil scanner]"
	}
	return fmt.Sprintf("[width=%d pos=%d/%d last=%d #segs=%d]", len(sc.preds),
		sc.pos, sc.length, sc.lastPos, len(sc.segs))
}

// matchAt tests the predicates against the consecutive elements starting
// at pos. Matches may not extend beyond the end of the input.
func (sc *scanner[S, E]) matchAt(pos int) bool {
	if pos+len(sc.preds) > sc.length {
		return false
	}
	for i, pred := range sc.preds {
		if !pred(sc.seq.At(sc.input, pos+i)) {
			return false
		}
	}
	return true
}

// scan walks the input once, collecting alternating text and delimiter
// segments. Delimiters do not overlap.
func (sc *scanner[S, E]) scan() []segment.Segment[S] {
	width := len(sc.preds)
	sc.segs = make([]segment.Segment[S], 0, 8)
	for sc.pos < sc.length {
		if !sc.matchAt(sc.pos) {
			sc.pos++
			continue
		}
		if sc.pos == 0 || sc.pos-sc.lastPos > 1 {
			sc.segs = append(sc.segs, segment.NewText(sc.seq.Slice(sc.input, sc.lastPos, sc.pos)))
		}
		sc.segs = append(sc.segs, segment.NewDelimiter(sc.seq.Slice(sc.input, sc.pos, sc.pos+width)))
		CT().Debugf("delimiter at %d, %v", sc.pos, sc)
		sc.pos += width
		sc.lastPos = sc.pos
	}
	sc.segs = append(sc.segs, segment.NewText(sc.seq.Slice(sc.input, sc.lastPos, sc.length)))
	return sc.segs
}
