package opg

// RelValue is the value of a precedence relation between two tokens X and
// Y appearing adjacently in a derivation, i.e. in a string "a X b Y c".
type RelValue int8

// The three possible precedence relations. A fourth outcome, "absent",
// is represented by the zero value of a table lookup, never by a member
// of this type — see prec2.Table.
const (
	// LT means X binds looser than Y ("a X (b Y c)").
	LT RelValue = iota + 1
	// EQ means X and Y belong to the same construct ("a X b Y c" as one unit).
	EQ
	// GT means X binds tighter than Y ("(a X b) Y c").
	GT
)

func (r RelValue) String() string {
	switch r {
	case LT:
		return "<"
	case EQ:
		return "="
	case GT:
		return ">"
	default:
		return "?"
	}
}

// Assoc is the associativity tag attached to a group of operators in a
// precedence list (prec2 input form A).
type Assoc int8

const (
	// LEFT operators associate to the left: a group member X gets GT
	// against every other member of the same group, including itself.
	LEFT Assoc = iota
	// RIGHT operators associate to the right: LT within the group.
	RIGHT
	// NONASSOC operators carry no intra-group relation at all.
	NONASSOC
	// ASSOC operators are mutually EQ, e.g. a chain of the same infix
	// keyword belonging to one construct ("a -> b -> c").
	ASSOC
)

func (a Assoc) String() string {
	switch a {
	case LEFT:
		return "left"
	case RIGHT:
		return "right"
	case NONASSOC:
		return "nonassoc"
	case ASSOC:
		return "assoc"
	default:
		return "?"
	}
}
