package elementary

// RuleNumber is the Wolfram code of Rule: bit i of RuleNumber is the output
// for the neighbourhood p<<2 | q<<1 | r == i.
const RuleNumber = 26

// Rule maps the three parent cells of the row above (left, centre, right) to
// the value of the child cell. Inputs must be 0 or 1.
func Rule(p, q, r uint8) uint8 {
	return p ^ ((p & q) | r)
}
