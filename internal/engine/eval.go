package engine

import (
	"math"
	"strconv"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokInvalid
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}
	start := l.i
	switch c := l.s[l.i]; c {
	case '+', '-':
		l.i++
		// "++" and "--" are increment/decrement in the syntax the keypad
		// grammar mirrors, and never valid between operands.
		if l.i < len(l.s) && l.s[l.i] == c {
			l.i++
			return token{kind: tokInvalid, text: l.s[start:l.i], pos: start}
		}
		if c == '+' {
			return token{kind: tokPlus, text: "+", pos: start}
		}
		return token{kind: tokMinus, text: "-", pos: start}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*", pos: start}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/", pos: start}
	}

	end := scanNumber(l.s, l.i)
	if end == start {
		l.i++
		return token{kind: tokInvalid, text: l.s[start:l.i], pos: start}
	}
	l.i = end
	txt := l.s[start:end]
	f, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		// ParseFloat only fails here on range errors; it still returns ±Inf.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return token{kind: tokInvalid, text: txt, pos: start}
		}
	}
	return token{kind: tokNumber, text: txt, pos: start, num: f}
}

// scanNumber returns the end of the decimal literal starting at i, or i when
// there is none. Accepted forms: 12, 1.5, .5, 5., with an optional exponent.
func scanNumber(s string, i int) int {
	start := i
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

type node interface {
	eval() (float64, error)
}

type numberNode struct{ v float64 }

func (n numberNode) eval() (float64, error) { return n.v, nil }

type unaryNode struct {
	op byte
	x  node
}

func (n unaryNode) eval() (float64, error) {
	v, err := n.x.eval()
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op          byte
	pos         int
	left, right node
}

func (n binaryNode) eval() (float64, error) {
	a, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	default:
		if b == 0 {
			return 0, &EvaluationError{Pos: n.pos, Err: ErrDivisionByZero}
		}
		return a / b, nil
	}
}

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) syntaxError() error {
	return &EvaluationError{Pos: p.cur.pos, Err: ErrSyntax}
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op, pos := p.cur.text[0], p.cur.pos
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, pos: pos, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op, pos := p.cur.text[0], p.cur.pos
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, pos: pos, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, x: x}, nil
	}
	if p.cur.kind != tokNumber {
		return nil, p.syntaxError()
	}
	v := p.cur.num
	p.next()
	return numberNode{v: v}, nil
}

// Evaluate computes the value of a display expression. Every '%' is first
// rewritten to "/100", so "50%" is 0.5 and "200*5%" is 10. The remaining text
// is infix arithmetic over + - * / with the usual precedence, evaluated left
// to right in float64. Any failure is returned as *EvaluationError.
func Evaluate(expr string) (float64, error) {
	src := strings.ReplaceAll(expr, string(Percent), "/100")
	if strings.TrimSpace(src) == "" {
		return 0, &EvaluationError{Expr: expr, Pos: -1, Err: ErrEmpty}
	}

	p := &parser{l: lexer{s: src}}
	p.next()
	root, err := p.parseSum()
	if err == nil && p.cur.kind != tokEOF {
		err = p.syntaxError()
	}
	if err != nil {
		return 0, withExpr(err, expr)
	}

	v, err := root.eval()
	if err != nil {
		return 0, withExpr(err, expr)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &EvaluationError{Expr: expr, Pos: -1, Err: ErrNotFinite}
	}
	return v, nil
}

// Compute evaluates expr and formats the result for the display.
func Compute(expr string) (string, error) {
	v, err := Evaluate(expr)
	if err != nil {
		return "", err
	}
	return FormatResult(v), nil
}

func withExpr(err error, expr string) error {
	if ee, ok := err.(*EvaluationError); ok {
		ee.Expr = expr
	}
	return err
}
