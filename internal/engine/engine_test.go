package engine

import (
	"errors"
	"io"
	"testing"
)

func drain(t *testing.T, src TokenSource) ([]Token, error) {
	t.Helper()
	var out []Token
	for i := 0; i < 1000; i++ {
		tok, err := src.NextToken()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == KindEOF {
			return out, nil
		}
	}
	t.Fatalf("token stream did not end")
	return nil, nil
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func sameKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestJSONSource_KeysAndValues(t *testing.T) {
	toks, err := drain(t, NewJSONSource([]byte(`{"a":"x","b":[1,true,null],"c":{"d":"e"}}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{
		KindBeginObject,
		KindKey, KindString,
		KindKey, KindBeginArray, KindNumber, KindBool, KindNull, KindEndArray,
		KindKey, KindBeginObject, KindKey, KindString, KindEndObject,
		KindEndObject, KindEOF,
	}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[1].String != "a" || toks[2].String != "x" {
		t.Fatalf("key/value = %q/%q", toks[1].String, toks[2].String)
	}
}

func TestJSONSource_NumbersKeepText(t *testing.T) {
	toks, err := drain(t, NewJSONSource([]byte(`[18446744073709551615, 1.0]`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Number != "18446744073709551615" {
		t.Fatalf("u64 max lost precision: %q", toks[1].Number)
	}
	if toks[2].Number != "1.0" {
		t.Fatalf("float text = %q", toks[2].Number)
	}
}

func TestJSONSource_UnexpectedEOF(t *testing.T) {
	_, err := drain(t, NewJSONSource([]byte(`{"a":[1`)))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("want io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestEnforcement_DuplicateKey(t *testing.T) {
	src := WrapWithEnforcement(NewJSONSource([]byte(`{"a":1,"b":{"a":2},"a":3}`)), Limits{})
	_, err := drain(t, src)
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("want IssueError, got %v", err)
	}
	if ie.Code != CodeDuplicateKey || ie.Key != "a" {
		t.Fatalf("issue = %+v", ie.SimpleIssue)
	}
}

func TestEnforcement_SameKeyInSiblingObjects(t *testing.T) {
	src := WrapWithEnforcement(NewJSONSource([]byte(`[{"a":1},{"a":2}]`)), Limits{})
	if _, err := drain(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnforcement_MaxDepth(t *testing.T) {
	src := WrapWithEnforcement(NewJSONSource([]byte(`[[[1]]]`)), Limits{MaxDepth: 2})
	_, err := drain(t, src)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeRecursionLimit {
		t.Fatalf("want recursion limit, got %v", err)
	}
}

func TestLimits_CheckSize(t *testing.T) {
	if err := (Limits{MaxBytes: 4}).CheckSize(4); err != nil {
		t.Fatalf("at limit: %v", err)
	}
	err := (Limits{MaxBytes: 4}).CheckSize(5)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeTruncatedInput {
		t.Fatalf("want truncated input, got %v", err)
	}
	if err := (Limits{}).CheckSize(1 << 30); err != nil {
		t.Fatalf("no limit: %v", err)
	}
}

func TestDepth_EnterLeave(t *testing.T) {
	d := NewDepth(2)
	if err := d.Enter(); err != nil {
		t.Fatal(err)
	}
	if err := d.Enter(); err != nil {
		t.Fatal(err)
	}
	if err := d.Enter(); err == nil {
		t.Fatalf("third level should exceed cap")
	}
	d.Leave()
	d.Leave()
	if d.Current() != 1 {
		t.Fatalf("current = %d", d.Current())
	}
	d.Leave()
	d.Leave()
	if d.Current() != 0 {
		t.Fatalf("leave below zero: %d", d.Current())
	}
}

func TestNesting_PerTypeLevels(t *testing.T) {
	n := NewNesting(2)
	// a cycle through two types costs one level per lap
	for lap := 0; lap < 2; lap++ {
		if err := n.Enter("loop"); err != nil {
			t.Fatalf("lap %d loop: %v", lap, err)
		}
		if err := n.Enter("sequence"); err != nil {
			t.Fatalf("lap %d sequence: %v", lap, err)
		}
	}
	if n.Level("loop") != 2 || n.Level("sequence") != 2 {
		t.Fatalf("levels = %d/%d", n.Level("loop"), n.Level("sequence"))
	}
	var ie IssueError
	if err := n.Enter("loop"); !errors.As(err, &ie) || ie.Code != CodeRecursionLimit {
		t.Fatalf("third lap should exceed cap, got %v", err)
	}
	n.Leave("loop")
	n.Leave("sequence")
	n.Leave("loop")
	if n.Level("loop") != 1 || n.Level("sequence") != 1 {
		t.Fatalf("after leave = %d/%d", n.Level("loop"), n.Level("sequence"))
	}
}

func TestNesting_OpenBagCeiling(t *testing.T) {
	n := NewNesting(1)
	var err error
	for i := 0; i <= minNestingBags && err == nil; i++ {
		err = n.Enter(i)
	}
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeRecursionLimit {
		t.Fatalf("distinct types beyond the bag ceiling should fail, got %v", err)
	}
	unbounded := NewNesting(0)
	for i := 0; i < 10*minNestingBags; i++ {
		if err := unbounded.Enter("x"); err != nil {
			t.Fatalf("no cap: %v", err)
		}
	}
}

func TestSkip_NestedValue(t *testing.T) {
	src := NewJSONSource([]byte(`[{"a":[1,2]},"next"]`))
	if _, err := src.NextToken(); err != nil {
		t.Fatal(err)
	}
	first, _ := src.NextToken()
	if err := Skip(src, first); err != nil {
		t.Fatalf("skip: %v", err)
	}
	tok, _ := src.NextToken()
	if tok.Kind != KindString || tok.String != "next" {
		t.Fatalf("after skip got %v %q", tok.Kind, tok.String)
	}
}

func TestYAMLSource_Structure(t *testing.T) {
	src, err := NewYAMLSource([]byte(`
name: Skin01
count: 0x10
ratio: 1.5
enabled: yes
tags: [a, b]
base: &b {x: 1}
copy: *b
empty: ~
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	toks, err := drain(t, src)
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	want := []Kind{
		KindBeginObject,
		KindKey, KindString,
		KindKey, KindNumber,
		KindKey, KindNumber,
		KindKey, KindString,
		KindKey, KindBeginArray, KindString, KindString, KindEndArray,
		KindKey, KindBeginObject, KindKey, KindNumber, KindEndObject,
		KindKey, KindBeginObject, KindKey, KindNumber, KindEndObject,
		KindKey, KindNull,
		KindEndObject, KindEOF,
	}
	if got := kinds(toks); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if toks[4].Number != "16" {
		t.Fatalf("hex int = %q", toks[4].Number)
	}
	if toks[6].Number != "1.5" {
		t.Fatalf("float = %q", toks[6].Number)
	}
	// YAML 1.2: "yes" is a plain string
	if toks[8].String != "yes" {
		t.Fatalf("yes = %q", toks[8].String)
	}
}

func TestYAMLSource_MultipleDocumentsRejected(t *testing.T) {
	if _, err := NewYAMLSource([]byte("a: 1\n---\nb: 2\n")); err == nil {
		t.Fatalf("want error for two documents")
	}
}

func TestYAMLSource_DuplicateKeysCaughtByEnforcement(t *testing.T) {
	src, err := NewYAMLSource([]byte("a: 1\na: 2\n"))
	if err != nil {
		// yaml.v3 may already reject the mapping
		return
	}
	_, err = drain(t, WrapWithEnforcement(src, Limits{}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeDuplicateKey {
		t.Fatalf("want duplicate key, got %v", err)
	}
}
