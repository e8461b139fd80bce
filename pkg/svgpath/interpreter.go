package svgpath

import (
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/embossy/pkg/geom"
)

// ctrlKind records which curve family produced the last control point, for
// the S/T smooth-reflection rule.
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlCubic
	ctrlQuad
)

// ParseState is the cursor state of one path data string: current point,
// subpath start, the last control point and the accumulated subpaths. It
// exists only for the duration of one InterpretPath call.
type ParseState struct {
	current  Point
	start    Point
	lastCtrl Point
	ctrl     ctrlKind

	subpath   []Point
	completed [][]Point
}

// InterpretPath tokenizes path data and runs the command state machine over
// it, returning one ordered point sequence per subpath. Curves are flattened
// with the default segment budgets. A numeric token before any command is the
// only fatal grammar error; an underfilled trailing argument group is dropped
// with a warning and everything parsed so far is kept.
func InterpretPath(d string) ([][]Point, error) {
	state := &ParseState{}

	tokens := Tokenize(d)
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if tok.Kind != TokenCommand {
			return nil, fmt.Errorf("%w: number %q before any command", ErrBadPathData, tok.Text)
		}

		i = state.run(tok.Letter, tokens, i+1)
	}

	state.flush()

	return state.completed, nil
}

// run dispatches one command letter and consumes its repeated argument
// groups, returning the index of the next unconsumed token.
func (s *ParseState) run(cmd byte, tokens []Token, i int) int {
	relative := cmd >= 'a'

	switch cmd {
	case 'M', 'm':
		return s.moveTo(relative, tokens, i)
	case 'L', 'l':
		return s.lineTo(relative, tokens, i)
	case 'H', 'h':
		return s.axisLineTo(relative, true, tokens, i)
	case 'V', 'v':
		return s.axisLineTo(relative, false, tokens, i)
	case 'C', 'c':
		return s.cubicTo(relative, false, tokens, i)
	case 'S', 's':
		return s.cubicTo(relative, true, tokens, i)
	case 'Q', 'q':
		return s.quadTo(relative, false, tokens, i)
	case 'T', 't':
		return s.quadTo(relative, true, tokens, i)
	case 'A', 'a':
		return s.arcTo(relative, tokens, i)
	case 'Z', 'z':
		s.closePath()
		return i
	}

	// Tokenize emits only known command letters
	return i
}

// moveTo starts a new subpath; additional coordinate pairs are implicit
// linetos.
func (s *ParseState) moveTo(relative bool, tokens []Token, i int) int {
	first := true
	for numbersAhead(tokens, i, 2) {
		p := s.point(tokens, i, relative)
		i += 2

		if first {
			s.flush()
			s.start = p
			first = false
		}

		s.current = p
		s.subpath = append(s.subpath, p)
	}

	s.ctrl = ctrlNone

	return s.skipStray(tokens, i)
}

func (s *ParseState) lineTo(relative bool, tokens []Token, i int) int {
	for numbersAhead(tokens, i, 2) {
		p := s.point(tokens, i, relative)
		i += 2

		s.current = p
		s.subpath = append(s.subpath, p)
	}

	s.ctrl = ctrlNone

	return s.skipStray(tokens, i)
}

// axisLineTo handles H/h (horizontal=true) and V/v: only one axis moves.
func (s *ParseState) axisLineTo(relative, horizontal bool, tokens []Token, i int) int {
	for numbersAhead(tokens, i, 1) {
		v := geom.SourcePos(tokens[i].Value)
		i++

		switch {
		case horizontal && relative:
			s.current.X += v
		case horizontal:
			s.current.X = v
		case relative:
			s.current.Y += v
		default:
			s.current.Y = v
		}

		s.subpath = append(s.subpath, s.current)
	}

	s.ctrl = ctrlNone

	return s.skipStray(tokens, i)
}

func (s *ParseState) cubicTo(relative, smooth bool, tokens []Token, i int) int {
	argc := 6
	if smooth {
		argc = 4
	}

	for numbersAhead(tokens, i, argc) {
		var c1 Point
		if smooth {
			c1 = s.reflectedCtrl(ctrlCubic)
		} else {
			c1 = s.point(tokens, i, relative)
			i += 2
		}

		c2 := s.point(tokens, i, relative)
		end := s.point(tokens, i+2, relative)
		i += 4

		s.appendFlattened(FlattenCubic(s.current, c1, c2, end, DefaultCurveSegments))
		s.current = end
		s.lastCtrl = c2
		s.ctrl = ctrlCubic
	}

	return s.skipStray(tokens, i)
}

func (s *ParseState) quadTo(relative, smooth bool, tokens []Token, i int) int {
	argc := 4
	if smooth {
		argc = 2
	}

	for numbersAhead(tokens, i, argc) {
		var c1 Point
		if smooth {
			c1 = s.reflectedCtrl(ctrlQuad)
		} else {
			c1 = s.point(tokens, i, relative)
			i += 2
		}

		end := s.point(tokens, i, relative)
		i += 2

		s.appendFlattened(FlattenQuad(s.current, c1, end, DefaultCurveSegments))
		s.current = end
		s.lastCtrl = c1
		s.ctrl = ctrlQuad
	}

	return s.skipStray(tokens, i)
}

// arcTo consumes 7-argument groups: rx ry x-rotation large-arc sweep x y.
// Arcs do not participate in smooth-reflection chaining.
func (s *ParseState) arcTo(relative bool, tokens []Token, i int) int {
	for numbersAhead(tokens, i, 7) {
		rx := tokens[i].Value
		ry := tokens[i+1].Value
		rot := tokens[i+2].Value
		largeArc := tokens[i+3].Value != 0
		sweep := tokens[i+4].Value != 0
		end := s.point(tokens, i+5, relative)
		i += 7

		s.appendFlattened(FlattenArc(s.current, rx, ry, rot, largeArc, sweep, end, DefaultArcSegments))
		s.current = end
	}

	s.ctrl = ctrlNone

	return s.skipStray(tokens, i)
}

// closePath appends the subpath start if the loop is not already closed and
// resets the cursor to it. The subpath itself stays open for more commands.
func (s *ParseState) closePath() {
	if len(s.subpath) > 0 && s.subpath[len(s.subpath)-1] != s.start {
		s.subpath = append(s.subpath, s.start)
	}

	s.current = s.start
	s.ctrl = ctrlNone
}

// point reads a coordinate pair at i, applying the current point offset for
// relative commands.
func (s *ParseState) point(tokens []Token, i int, relative bool) Point {
	p := geom.Pt(geom.SourcePos(tokens[i].Value), geom.SourcePos(tokens[i+1].Value))
	if relative {
		p = p.Add(s.current)
	}

	return p
}

// reflectedCtrl mirrors the previous segment's control point about the
// current point; if the previous command was of a different curve family the
// current point itself is used.
func (s *ParseState) reflectedCtrl(want ctrlKind) Point {
	if s.ctrl != want {
		return s.current
	}

	return s.current.Mul(2).Sub(s.lastCtrl)
}

// appendFlattened appends sampled curve points, dropping the first sample
// which duplicates the current point.
func (s *ParseState) appendFlattened(points []Point) {
	s.subpath = append(s.subpath, points[1:]...)
}

func (s *ParseState) flush() {
	if len(s.subpath) == 0 {
		return
	}

	s.completed = append(s.completed, s.subpath)
	s.subpath = nil
}

// skipStray drops numeric tokens left over from an underfilled argument
// group so that malformed trailing data never aborts the whole path.
func (s *ParseState) skipStray(tokens []Token, i int) int {
	n := 0
	for i+n < len(tokens) && tokens[i+n].Kind == TokenNumber {
		n++
	}

	if n > 0 {
		glg.Warnf("svgpath: dropping %d stray numeric argument(s)", n)
	}

	return i + n
}

// numbersAhead reports whether the next n tokens are all numeric.
func numbersAhead(tokens []Token, i, n int) bool {
	if i+n > len(tokens) {
		return false
	}

	for k := 0; k < n; k++ {
		if tokens[i+k].Kind != TokenNumber {
			return false
		}
	}

	return true
}
