// Package engine holds the decode-time machinery shared by the binary and
// text codecs: token streams over goccy/go-json and yaml.v3, and the
// enforcement wrappers that apply size, depth and duplicate-key limits.
package engine

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// Kind represents JSON token kinds.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
	KindEOF
)

var kindNames = [...]string{
	KindBeginObject: "'{'",
	KindEndObject:   "'}'",
	KindBeginArray:  "'['",
	KindEndArray:    "']'",
	KindKey:         "key",
	KindString:      "string",
	KindNumber:      "number",
	KindBool:        "bool",
	KindNull:        "null",
	KindEOF:         "end of input",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

// Token is one streaming JSON token. Number holds the literal text so that
// integers wider than float64 survive.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
}

// TokenSource yields JSON tokens in document order. At the end of input it
// returns a KindEOF token and a nil error.
type TokenSource interface {
	NextToken() (Token, error)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type jsonSource struct {
	dec   *j.Decoder
	stack []frame
}

// NewJSONSource tokenizes b with goccy/go-json. Numbers are kept as text.
func NewJSONSource(b []byte) TokenSource {
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *jsonSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(s.stack) > 0 {
				return Token{}, io.ErrUnexpectedEOF
			}
			return Token{Kind: KindEOF}, nil
		}
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray}, nil
		case '}', ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			if v == '}' {
				return Token{Kind: KindEndObject}, nil
			}
			return Token{Kind: KindEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v}, nil
			}
		}
		s.valueDone()
		return Token{Kind: KindString, String: v}, nil
	case bool:
		s.valueDone()
		return Token{Kind: KindBool, Bool: v}, nil
	case j.Number:
		s.valueDone()
		return Token{Kind: KindNumber, Number: string(v)}, nil
	case float64:
		s.valueDone()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	}
	s.valueDone()
	return Token{Kind: KindNull}, nil
}

// Skip consumes one complete value whose first token is tok.
func Skip(src TokenSource, tok Token) error {
	depth := 0
	for {
		switch tok.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
		case KindEOF:
			return io.ErrUnexpectedEOF
		}
		if depth <= 0 {
			return nil
		}
		var err error
		if tok, err = src.NextToken(); err != nil {
			return err
		}
	}
}
