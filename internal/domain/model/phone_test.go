package model_test

import (
	"strings"
	"testing"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"leading zero", "0151234567", "+49151234567"},
		{"leading zero with separators", "0151 / 234-567", "+49151234567"},
		{"bare country code", "49151234567", "+49151234567"},
		{"already international", "+49 151 234567", "+49151234567"},
		{"foreign international untouched", "+1 (555) 010-9999", "+15550109999"},
		{"inner plus dropped", "+49+151", "+49151"},
		{"plus not leading", "0049+151", "+49049151"},
		{"surrounding whitespace keeps plus", " +1 555 0100", "+15550100"},
		{"leading tab keeps plus", "\t+44 20 7946\n", "+44207946"},
		{"no known prefix", "151234567", "151234567"},
		{"empty", "", ""},
		{"non numeric", "call me", ""},
		{"only plus", "+", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.NormalizePhone(tc.in); got != tc.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePhoneProperties(t *testing.T) {
	digits := []string{"0", "01", "0170", "0301234567", "0151234567890"}
	for _, d := range digits {
		got := model.NormalizePhone(d)
		if got != "+49"+d[1:] {
			t.Errorf("NormalizePhone(%q) = %q, want +49 prefix", d, got)
		}
	}

	plus := []string{"+44 20 7946 0958", "+33-1-23-45-67-89", "+4915112345"}
	for _, p := range plus {
		got := model.NormalizePhone(p)
		if !strings.HasPrefix(got, "+") {
			t.Errorf("NormalizePhone(%q) = %q, lost leading +", p, got)
		}
		if got[1:3] != p[1:3] {
			t.Errorf("NormalizePhone(%q) = %q, prefix altered", p, got)
		}
	}
}
