package primitives

import "math"

// Op is one of the three operators combined to form a numeric core.
type Op byte

const (
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// OpSeq is an ordered triple of operators applied left to right:
// ((a op1 b) op2 c) op3 d.
type OpSeq [3]Op

func (s OpSeq) String() string {
	return string([]byte{byte(s[0]), byte(s[1]), byte(s[2])})
}

// Orderings lists every way of applying the three operators without
// repetition. Core scans them in this order and reports the first
// ordering that achieves the minimum.
var Orderings = [6]OpSeq{
	{OpSub, OpMul, OpDiv},
	{OpSub, OpDiv, OpMul},
	{OpMul, OpSub, OpDiv},
	{OpMul, OpDiv, OpSub},
	{OpDiv, OpSub, OpMul},
	{OpDiv, OpMul, OpSub},
}

// Group is a block of exactly four consecutive ranks from one word.
type Group [4]int

// Apply folds the group through the sequence using float64 arithmetic so
// intermediate divisions are allowed. The outcome is only reported when
// the final value is a mathematically exact integer in [1,26]; division
// by zero or a value outside the range yields ok == false.
//
// The trunc comparison is exact rather than epsilon-based: the operands
// are small integers, so every intermediate product and difference is
// exactly representable.
func (s OpSeq) Apply(g Group) (int, bool) {
	result := float64(g[0])
	for i, op := range s {
		operand := float64(g[i+1])
		switch op {
		case OpSub:
			result -= operand
		case OpMul:
			result *= operand
		case OpDiv:
			if operand == 0 {
				return 0, false
			}
			result /= operand
		}
	}
	if result != math.Trunc(result) {
		return 0, false
	}
	n := int(result)
	if n < minRank || n > maxRank {
		return 0, false
	}
	return n, true
}

// Core returns the smallest valid value any operator ordering produces
// for the group, together with the ordering that produced it. The value
// is a pure function of the group; only the reported ordering depends on
// enumeration order, and then only between tied orderings. ok is false
// when no ordering is valid.
func (g Group) Core() (value int, ops OpSeq, ok bool) {
	for _, seq := range Orderings {
		res, valid := seq.Apply(g)
		if !valid {
			continue
		}
		if !ok || res < value {
			value, ops, ok = res, seq, true
		}
	}
	return value, ops, ok
}

// GroupsOf partitions ranks into consecutive non-overlapping groups of
// four. A trailing remainder shorter than four is dropped.
func GroupsOf(ranks []int) []Group {
	groups := make([]Group, 0, len(ranks)/4)
	for i := 0; i+4 <= len(ranks); i += 4 {
		groups = append(groups, Group{ranks[i], ranks[i+1], ranks[i+2], ranks[i+3]})
	}
	return groups
}
