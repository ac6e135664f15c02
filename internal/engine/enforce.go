package engine

import (
	"strconv"
)

// Issue codes raised by the enforcement helpers. They share their spelling
// with the public error codes so callers can map them one to one.
const (
	CodeRecursionLimit = "recursion_limit"
	CodeDuplicateKey   = "duplicate_key"
	CodeTruncatedInput = "truncated_input"
)

// Limits bounds one decode.
type Limits struct {
	// MaxDepth caps record nesting; <= 0 disables the check.
	MaxDepth int
	// MaxBytes caps the input size; <= 0 disables the check.
	MaxBytes int64
}

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Message string
	Key     string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// CheckSize rejects inputs larger than MaxBytes.
func (l Limits) CheckSize(n int) error {
	if l.MaxBytes > 0 && int64(n) > l.MaxBytes {
		return IssueError{SimpleIssue{
			Code:    CodeTruncatedInput,
			Message: "input of " + strconv.Itoa(n) + " bytes exceeds limit of " + strconv.FormatInt(l.MaxBytes, 10),
		}}
	}
	return nil
}

// Depth tracks record nesting for one decode. The zero value has no limit.
type Depth struct {
	max int
	cur int
}

// NewDepth returns a depth guard capped at max (<= 0 disables the cap).
func NewDepth(max int) *Depth { return &Depth{max: max} }

// Enter descends one level and fails once the cap is exceeded.
func (d *Depth) Enter() error {
	d.cur++
	if d.max > 0 && d.cur > d.max {
		return IssueError{SimpleIssue{
			Code:    CodeRecursionLimit,
			Message: "nesting depth exceeds " + strconv.Itoa(d.max),
		}}
	}
	return nil
}

// Leave ascends one level.
func (d *Depth) Leave() {
	if d.cur > 0 {
		d.cur--
	}
}

// Current returns the current nesting level.
func (d *Depth) Current() int { return d.cur }

// nestingBagFactor scales the recursion cap into the ceiling on open bags,
// which bounds stack use when several record types recurse through each
// other.
const (
	nestingBagFactor = 16
	minNestingBags   = 256
)

// Nesting tracks recursion for one decode. A record type's level is the
// number of its bags open at once, so each nesting of a recursive
// declaration costs one level however many records the cycle passes
// through. The total of open bags is bounded separately.
type Nesting struct {
	max  int
	bags int
	open int
	per  map[any]int
}

// NewNesting returns a guard allowing max open bags of one record type
// (<= 0 disables both caps).
func NewNesting(limit int) *Nesting {
	n := &Nesting{max: limit}
	if limit > 0 {
		n.bags = max(limit*nestingBagFactor, minNestingBags)
	}
	return n
}

// Enter opens a bag of the record type identified by key.
func (n *Nesting) Enter(key any) error {
	if n.per == nil {
		n.per = make(map[any]int)
	}
	n.open++
	lvl := n.per[key] + 1
	n.per[key] = lvl
	if n.max <= 0 {
		return nil
	}
	if lvl > n.max {
		return IssueError{SimpleIssue{
			Code:    CodeRecursionLimit,
			Message: "nesting depth exceeds " + strconv.Itoa(n.max),
		}}
	}
	if n.open > n.bags {
		return IssueError{SimpleIssue{
			Code:    CodeRecursionLimit,
			Message: "open records exceed " + strconv.Itoa(n.bags),
		}}
	}
	return nil
}

// Leave closes a bag opened by Enter with the same key.
func (n *Nesting) Leave(key any) {
	if lvl := n.per[key]; lvl > 1 {
		n.per[key] = lvl - 1
	} else {
		delete(n.per, key)
	}
	if n.open > 0 {
		n.open--
	}
}

// Level returns the number of open bags of key.
func (n *Nesting) Level(key any) int { return n.per[key] }

// WrapWithEnforcement returns a TokenSource that rejects duplicate object
// keys and container nesting deeper than MaxDepth.
func WrapWithEnforcement(inner TokenSource, lim Limits) TokenSource {
	return &enforcingTokenSource{inner: inner, depth: NewDepth(lim.MaxDepth)}
}

type dupFrame struct {
	kind containerKind
	keys map[string]struct{}
}

type enforcingTokenSource struct {
	inner TokenSource
	depth *Depth
	stack []dupFrame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		if err := e.depth.Enter(); err != nil {
			return Token{}, err
		}
		f := dupFrame{kind: kindArray}
		if tok.Kind == KindBeginObject {
			f = dupFrame{kind: kindObject, keys: make(map[string]struct{})}
		}
		e.stack = append(e.stack, f)
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		e.depth.Leave()
	case KindKey:
		if n := len(e.stack); n > 0 && e.stack[n-1].kind == kindObject {
			top := &e.stack[n-1]
			if _, ok := top.keys[tok.String]; ok {
				return Token{}, IssueError{SimpleIssue{
					Code:    CodeDuplicateKey,
					Message: "key '" + tok.String + "' duplicated",
					Key:     tok.String,
				}}
			}
			top.keys[tok.String] = struct{}{}
		}
	}
	return tok, nil
}
