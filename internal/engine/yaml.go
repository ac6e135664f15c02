package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewYAMLSource parses one YAML document and exposes it through the same
// token stream the JSON source produces. Anchors and aliases are resolved;
// duplicate keys are left to WrapWithEnforcement. An empty document yields
// a lone null.
func NewYAMLSource(b []byte) (TokenSource, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &sliceSource{toks: []Token{{Kind: KindNull}}}, nil
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err == nil {
		return nil, errors.New("yaml: more than one document")
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	s := &sliceSource{}
	if err := s.flatten(&root, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// maxAliasDepth bounds alias expansion so a self-referencing anchor cannot
// loop forever.
const maxAliasDepth = 64

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{Kind: KindEOF}, nil
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) emit(t Token) { s.toks = append(s.toks, t) }

func (s *sliceSource) flatten(n *yaml.Node, aliases int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			s.emit(Token{Kind: KindNull})
			return nil
		}
		return s.flatten(n.Content[0], aliases)
	case yaml.AliasNode:
		if aliases >= maxAliasDepth {
			return fmt.Errorf("yaml: alias nesting exceeds %d at %d:%d", maxAliasDepth, n.Line, n.Column)
		}
		return s.flatten(n.Alias, aliases+1)
	case yaml.MappingNode:
		s.emit(Token{Kind: KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: non-scalar key at %d:%d", k.Line, k.Column)
			}
			s.emit(Token{Kind: KindKey, String: k.Value})
			if err := s.flatten(n.Content[i+1], aliases); err != nil {
				return err
			}
		}
		s.emit(Token{Kind: KindEndObject})
		return nil
	case yaml.SequenceNode:
		s.emit(Token{Kind: KindBeginArray})
		for _, c := range n.Content {
			if err := s.flatten(c, aliases); err != nil {
				return err
			}
		}
		s.emit(Token{Kind: KindEndArray})
		return nil
	case yaml.ScalarNode:
		t, err := scalarToken(n)
		if err != nil {
			return err
		}
		s.emit(t)
		return nil
	}
	return fmt.Errorf("yaml: unsupported node kind %d at %d:%d", n.Kind, n.Line, n.Column)
}

// scalarToken maps a resolved YAML scalar to a token. Integers are
// normalised to decimal text so hex and octal literals decode like JSON
// numbers.
func scalarToken(n *yaml.Node) (Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return Token{Kind: KindNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindBool, Bool: b}, nil
	case "!!int":
		v := strings.ReplaceAll(n.Value, "_", "")
		if u, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 0, 64); err == nil {
			return Token{Kind: KindNumber, Number: strconv.FormatUint(u, 10)}, nil
		}
		if i, err := strconv.ParseInt(v, 0, 64); err == nil {
			return Token{Kind: KindNumber, Number: strconv.FormatInt(i, 10)}, nil
		}
		// out of 64-bit range; hand the text on so the decoder reports overflow
		return Token{Kind: KindNumber, Number: v}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Token{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Token{}, fmt.Errorf("yaml: non-finite float %q at %d:%d", n.Value, n.Line, n.Column)
		}
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	}
	return Token{Kind: KindString, String: n.Value}, nil
}
