package rigkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path data is a restricted subset of SVG path syntax: "M" starts a
// subpath, "C" marks a cubic segment boundary, and every other token is an
// absolute coordinate, alternating x and y.

var (
	// ErrInvalidToken is returned when a path token is neither a command
	// nor a number.
	ErrInvalidToken = errors.New("rigkey: invalid path token")

	// ErrMissingMoveTo is returned when curve data appears before the first
	// MoveTo command.
	ErrMissingMoveTo = errors.New("rigkey: path data before first M")
)

// segmentValues is the number of coordinates that make up one cubic segment.
const segmentValues = 8

// TokenKind identifies the kind of a path token.
type TokenKind uint8

const (
	// TokenNumber is a coordinate value.
	TokenNumber TokenKind = iota
	// TokenMoveTo is the "M" command.
	TokenMoveTo
	// TokenCurveTo is the "C" command.
	TokenCurveTo
)

// String implements fmt.Stringer.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenMoveTo:
		return "MoveTo"
	case TokenCurveTo:
		return "CurveTo"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// Token is a single element of a path token stream.
type Token struct {
	Kind  TokenKind
	Value float64 // only meaningful for TokenNumber
}

// Num returns a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

// MoveToToken and CurveToToken are the two command tokens.
var (
	MoveToToken  = Token{Kind: TokenMoveTo}
	CurveToToken = Token{Kind: TokenCurveTo}
)

// Tokenize splits path data on whitespace and classifies every token.
func Tokenize(data string) ([]Token, error) {
	fields := strings.Fields(data)
	tokens := make([]Token, 0, len(fields))
	for i, f := range fields {
		switch f {
		case "M":
			tokens = append(tokens, MoveToToken)
		case "C":
			tokens = append(tokens, CurveToToken)
		default:
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q at position %d", ErrInvalidToken, f, i)
			}
			tokens = append(tokens, Num(v))
		}
	}
	return tokens, nil
}

// PathState is the state of the path reader between two tokens.
//
// A state is either Empty (no coordinates since the last M) or
// Accumulating(Count) coordinates. The zero value has not seen an M yet and
// rejects curve data. States are values: Step never modifies its receiver.
type PathState struct {
	started bool
	values  []float64
}

// Started reports whether a MoveTo has been seen.
func (s PathState) Started() bool {
	return s.started
}

// Count returns the number of accumulated coordinates.
// A zero count is the Empty state.
func (s PathState) Count() int {
	return len(s.values)
}

// Step consumes one token and returns the next state.
//
// On a CurveTo with exactly eight accumulated coordinates the segment is
// returned with ok set, and the next state is re-seeded with the segment's
// end point so the following segment continues where this one ended. A
// CurveTo with any other count leaves the state unchanged.
//
// Numbers receive offset.X at even accumulator positions and offset.Y at odd
// ones.
func (s PathState) Step(tok Token, offset Point) (next PathState, seg CubicBez, ok bool, err error) {
	switch tok.Kind {
	case TokenMoveTo:
		return PathState{started: true}, CubicBez{}, false, nil

	case TokenCurveTo:
		if !s.started {
			return s, CubicBez{}, false, ErrMissingMoveTo
		}
		if len(s.values) != segmentValues {
			return s, CubicBez{}, false, nil
		}
		seg = s.segment()
		return PathState{started: true, values: []float64{seg.P3.X, seg.P3.Y}}, seg, true, nil

	case TokenNumber:
		if !s.started {
			return s, CubicBez{}, false, ErrMissingMoveTo
		}
		v := tok.Value
		if len(s.values)%2 == 0 {
			v += offset.X
		} else {
			v += offset.Y
		}
		values := make([]float64, len(s.values), len(s.values)+1)
		copy(values, s.values)
		return PathState{started: true, values: append(values, v)}, CubicBez{}, false, nil

	default:
		return s, CubicBez{}, false, fmt.Errorf("%w: kind %v", ErrInvalidToken, tok.Kind)
	}
}

// Finish ends the stream. It returns the last segment when exactly eight
// coordinates are pending; any other partial data is dropped.
func (s PathState) Finish() (CubicBez, bool) {
	if len(s.values) != segmentValues {
		if len(s.values) > 2 {
			Logger().Debug("rigkey: dropping partial path segment", "values", len(s.values))
		}
		return CubicBez{}, false
	}
	return s.segment(), true
}

func (s PathState) segment() CubicBez {
	v := s.values
	return CubicBez{
		P0: Pt(v[0], v[1]),
		P1: Pt(v[2], v[3]),
		P2: Pt(v[4], v[5]),
		P3: Pt(v[6], v[7]),
	}
}

// ReadPath folds the token stream into cubic segments, adding offset to
// every coordinate.
func ReadPath(tokens []Token, offset Point) ([]CubicBez, error) {
	var (
		state    PathState
		segments []CubicBez
	)
	for i, tok := range tokens {
		next, seg, ok, err := state.Step(tok, offset)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		if ok {
			segments = append(segments, seg)
		}
		state = next
	}
	if seg, ok := state.Finish(); ok {
		segments = append(segments, seg)
	}
	return segments, nil
}

// ParsePath tokenizes path data and reads its cubic segments.
func ParsePath(data string, offset Point) ([]CubicBez, error) {
	tokens, err := Tokenize(data)
	if err != nil {
		return nil, err
	}
	return ReadPath(tokens, offset)
}
