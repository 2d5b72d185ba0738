package wordify

import (
	"errors"
	"fmt"
	"strings"
)

// Op is the edit operation carried by a chunk or run.
type Op int8

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

var (
	// ErrUnknownOp is returned for chunks whose op is not Equal, Delete or Insert.
	ErrUnknownOp = errors.New("unknown op")
	// ErrMisaligned means the two word streams disagree on their shared equal words.
	// It cannot happen for chunks produced by a consistent diff.
	ErrMisaligned = errors.New("word streams misaligned")
)

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}
	return fmt.Sprintf("Op(%d)", int8(o))
}

func (o Op) valid() bool {
	return o == OpEqual || o == OpDelete || o == OpInsert
}

// MarshalText encodes the op as its lowercase name.
func (o Op) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOp, int8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText accepts the lowercase names produced by MarshalText.
func (o *Op) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "equal":
		*o = OpEqual
	case "delete":
		*o = OpDelete
	case "insert":
		*o = OpInsert
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, b)
	}
	return nil
}

// Chunk is one unit of a character-level edit script.
type Chunk struct {
	Op   Op     `json:"op" yaml:"op"`
	Text string `json:"text" yaml:"text"`
}

// Run is one unit of the word-level edit script handed to callers.
type Run struct {
	Op   Op     `json:"op" yaml:"op"`
	Text string `json:"text" yaml:"text"`
}

// Equal, Delete and Insert build runs.
func Equal(text string) Run  { return Run{Op: OpEqual, Text: text} }
func Delete(text string) Run { return Run{Op: OpDelete, Text: text} }
func Insert(text string) Run { return Run{Op: OpInsert, Text: text} }
