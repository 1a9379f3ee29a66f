package declmodel

import "testing"

func TestParseTypeExpr_RoundTrip(t *testing.T) {
	cases := []string{
		"str",
		"int",
		"float",
		"bool",
		"any",
		"list[str]",
		"map[int]",
		"list[map[list[str]]]",
		"Profile",
		"app.schemas.Profile",
	}

	for _, src := range cases {
		expr, err := parseTypeExpr(src, nil)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if got := expr.String(); got != src {
			t.Fatalf("round trip %q = %q", src, got)
		}
	}
}

func TestParseTypeExpr_Params(t *testing.T) {
	expr, err := parseTypeExpr("T", []string{"T"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if expr.kind != kindParam {
		t.Fatalf("kind = %v, want kindParam", expr.kind)
	}

	expr, err = parseTypeExpr("T", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if expr.kind != kindRef {
		t.Fatalf("kind = %v, want kindRef for unknown name", expr.kind)
	}
}

func TestParseTypeExpr_Invalid(t *testing.T) {
	for _, src := range []string{"", "list[", "list[str]]", "two words"} {
		if _, err := parseTypeExpr(src, nil); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}
