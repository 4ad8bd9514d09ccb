package elementary

import "testing"

func TestRuleTruthTable(t *testing.T) {
	cases := []struct {
		p, q, r uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 0, 1, 0},
		{1, 1, 0, 0},
		{1, 1, 1, 0},
	}
	for _, tc := range cases {
		if got := Rule(tc.p, tc.q, tc.r); got != tc.want {
			t.Fatalf("Rule(%d,%d,%d) = %d, want %d", tc.p, tc.q, tc.r, got, tc.want)
		}
	}
}

func TestRuleMatchesWolframCode(t *testing.T) {
	for idx := uint8(0); idx < 8; idx++ {
		p, q, r := idx>>2&1, idx>>1&1, idx&1
		want := uint8(RuleNumber>>idx) & 1
		if got := Rule(p, q, r); got != want {
			t.Fatalf("neighbourhood %03b: Rule=%d, code %d gives %d", idx, got, RuleNumber, want)
		}
	}
}
