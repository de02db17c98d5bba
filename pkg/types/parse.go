package types

import (
	"fmt"
	"strconv"
)

// Parse parses a LabRAD type tag (§4.B grammar) into a Type. Parsing is
// one-pass; whitespace and commas are skipped at the start and end of the
// tag, before each cluster child, and between a list's '*' (with its depth
// digits) and its element type, and nowhere else. Inside a units annotation
// every character up to the matching ']' is preserved verbatim (§4.B:
// "implementation must not normalize" units).
func Parse(tag string) (Type, error) {
	p := &parser{tag: tag}
	p.skipIgnorable()
	if p.pos >= len(p.tag) {
		return NewEmpty(), nil
	}
	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	p.skipIgnorable()
	if p.pos != len(p.tag) {
		return Type{}, p.errorf("unexpected trailing character %q", p.tag[p.pos])
	}
	return t, nil
}

type parser struct {
	tag string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &TypeParseError{Position: p.pos, Reason: fmt.Sprintf(format, args...), Tag: p.tag}
}

func (p *parser) skipIgnorable() {
	for p.pos < len(p.tag) {
		switch p.tag[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// startsType reports whether c can be the first character of a type,
// used to decide greedily whether an Error tag has an explicit payload.
func startsType(c byte) bool {
	switch c {
	case 'b', 'i', 'w', 't', 's', 'v', 'c', '*', '(', 'E', '_':
		return true
	default:
		return false
	}
}

func (p *parser) parseType() (Type, error) {
	if p.pos >= len(p.tag) {
		return Type{}, p.errorf("unexpected end of tag")
	}
	c := p.tag[p.pos]
	switch c {
	case '_':
		p.pos++
		return NewEmpty(), nil
	case 'b':
		p.pos++
		return NewBool(), nil
	case 'i':
		p.pos++
		return NewInt(), nil
	case 'w':
		p.pos++
		return NewWord(), nil
	case 't':
		p.pos++
		return NewTime(), nil
	case 's':
		p.pos++
		return NewStr(), nil
	case 'v':
		p.pos++
		units, present, err := p.parseUnits()
		if err != nil {
			return Type{}, err
		}
		if present {
			return NewValueUnits(units), nil
		}
		return NewValue(), nil
	case 'c':
		p.pos++
		units, present, err := p.parseUnits()
		if err != nil {
			return Type{}, err
		}
		if present {
			return NewComplexUnits(units), nil
		}
		return NewComplex(), nil
	case '*':
		return p.parseList()
	case '(':
		return p.parseCluster()
	case 'E':
		return p.parseError()
	default:
		return Type{}, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) parseUnits() (string, bool, error) {
	if p.pos >= len(p.tag) || p.tag[p.pos] != '[' {
		return "", false, nil
	}
	start := p.pos + 1
	i := start
	for i < len(p.tag) && p.tag[i] != ']' {
		i++
	}
	if i >= len(p.tag) {
		return "", false, p.errorf("unterminated units annotation")
	}
	units := p.tag[start:i]
	p.pos = i + 1
	return units, true, nil
}

func (p *parser) parseList() (Type, error) {
	start := p.pos
	p.pos++ // consume '*'
	digitsStart := p.pos
	for p.pos < len(p.tag) && p.tag[p.pos] >= '0' && p.tag[p.pos] <= '9' {
		p.pos++
	}
	depth := 1
	if p.pos > digitsStart {
		d, err := strconv.Atoi(p.tag[digitsStart:p.pos])
		if err != nil || d < 1 {
			p.pos = start
			return Type{}, p.errorf("invalid list depth")
		}
		depth = d
	}
	p.skipIgnorable()
	elem, err := p.parseType()
	if err != nil {
		return Type{}, err
	}
	return NewList(depth, elem), nil
}

func (p *parser) parseCluster() (Type, error) {
	openPos := p.pos
	p.pos++ // consume '('
	var children []Type
	for {
		p.skipIgnorable()
		if p.pos >= len(p.tag) {
			return Type{}, &TypeParseError{Position: openPos, Reason: "unterminated cluster", Tag: p.tag}
		}
		if p.tag[p.pos] == ')' {
			p.pos++
			break
		}
		child, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		children = append(children, child)
	}
	if len(children) == 0 {
		return Type{}, &TypeParseError{Position: openPos, Reason: "empty cluster", Tag: p.tag}
	}
	return NewCluster(children...), nil
}

func (p *parser) parseError() (Type, error) {
	p.pos++ // consume 'E'
	if p.pos < len(p.tag) && startsType(p.tag[p.pos]) {
		payload, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		return NewError(payload), nil
	}
	return NewErrorEmpty(), nil
}
