package indent

// Offset is the value stored for a Token rule: a default offset, plus an
// optional distinct offset used when the token at hand is hanging (spec
// section 3). Pair rules, including (WILDCARD, Token), store a plain int.
type Offset struct {
	Normal     int
	Hanging    int
	HasHanging bool
}

// Wildcard is the sentinel parent/token matching any identity in a Pair
// key, or standing alone as the basic per-step offset (spec section 3).
const Wildcard = "\x00WILDCARD\x00"

// Rules is a language mode's indentation rule table (spec section 3).
// Built once at setup and immutable afterwards.
type Rules struct {
	tokens    map[string]Offset
	pairs     map[[2]string]int
	wildcard  int
	hasWild   bool
	args      int
	hasArgs   bool
	listIntro map[string]bool
}

// NewRules creates an empty rule table. Use the Set* builders to
// populate it, then treat it as read-only.
func NewRules() *Rules {
	return &Rules{
		tokens:    make(map[string]Offset),
		pairs:     make(map[[2]string]int),
		listIntro: make(map[string]bool),
	}
}

// SetToken declares `Token → offset`.
func (r *Rules) SetToken(token string, offset int) {
	r.tokens[token] = Offset{Normal: offset}
}

// SetTokenHanging declares `Token → (offset, hangingOffset)`.
func (r *Rules) SetTokenHanging(token string, offset, hangingOffset int) {
	r.tokens[token] = Offset{Normal: offset, Hanging: hangingOffset, HasHanging: true}
}

// SetPair declares `(parent, token) → offset`. Pass Wildcard as parent
// for the `(WILDCARD, Token) → offset` shape.
func (r *Rules) SetPair(parent, token string, offset int) {
	r.pairs[[2]string{parent, token}] = offset
}

// SetWildcard declares the basic `WILDCARD → offset` step.
func (r *Rules) SetWildcard(offset int) {
	r.wildcard, r.hasWild = offset, true
}

// SetArgs declares `ARGS → offset`.
func (r *Rules) SetArgs(offset int) {
	r.args, r.hasArgs = offset, true
}

// SetListIntro declares tokens after which a sequence of expressions
// follows, per `LIST_INTRO → [Tokens]`.
func (r *Rules) SetListIntro(tokens ...string) {
	for _, tok := range tokens {
		r.listIntro[tok] = true
	}
}

// Token looks up a `Token → offset` (or `Token → (offset, hangingOffset)`)
// rule.
func (r *Rules) Token(token string) (Offset, bool) {
	o, ok := r.tokens[token]
	return o, ok
}

// Pair looks up `(parent, token) → offset`, falling back to
// `(WILDCARD, token) → offset` when no entry names parent specifically.
func (r *Rules) Pair(parent, token string) (int, bool) {
	if o, ok := r.pairs[[2]string{parent, token}]; ok {
		return o, true
	}
	if o, ok := r.pairs[[2]string{Wildcard, token}]; ok {
		return o, true
	}
	return 0, false
}

// Basic returns the `WILDCARD → offset` fallback step.
func (r *Rules) Basic() (int, bool) {
	return r.wildcard, r.hasWild
}

// Args returns the `ARGS → offset` rule.
func (r *Rules) Args() (int, bool) {
	return r.args, r.hasArgs
}

// IsListIntro reports whether token was declared a list-intro token.
func (r *Rules) IsListIntro(token string) bool {
	return r.listIntro[token]
}
