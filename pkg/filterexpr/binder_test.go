package filterexpr

import (
	"testing"

	"github.com/google/cel-go/cel"
)

var problemSchema = Schema{
	"id":          cel.StringType,
	"source":      cel.StringType,
	"correctRate": cel.IntType,
	"tags":        cel.ListType(cel.StringType),
}

func problemVars(id, source string, rate int64, tags []string) map[string]any {
	return map[string]any{
		"id":          id,
		"source":      source,
		"correctRate": rate,
		"tags":        tags,
	}
}

func TestCompileAndEval(t *testing.T) {
	prg, err := Compile(`correctRate < 50 && "geometry" in tags`, problemSchema)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	ok, err := prg.Eval(problemVars("p1", "A", 40, []string{"geometry"}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Error("expected the filter to match")
	}

	ok, err = prg.Eval(problemVars("p2", "B", 80, []string{"fractions"}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if ok {
		t.Error("expected the filter to reject")
	}
}

func TestCompileStringFunctions(t *testing.T) {
	prg, err := Compile(`source.startsWith("第405回")`, problemSchema)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	ok, err := prg.Eval(problemVars("p1", "第405回 大問4(1)", 60, []string{}))
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Error("expected a prefix match")
	}
}

func TestCompileRejectsBadFilters(t *testing.T) {
	cases := []struct {
		name   string
		filter string
	}{
		{"empty", "   "},
		{"unknown field", `difficulty > 3`},
		{"not boolean", `correctRate + 1`},
		{"syntax error", `correctRate <`},
	}
	for _, tc := range cases {
		if _, err := Compile(tc.filter, problemSchema); err == nil {
			t.Errorf("%s: expected Compile to fail for %q", tc.name, tc.filter)
		}
	}
}

func TestCompileRequiresSchema(t *testing.T) {
	if _, err := Compile(`id == "p1"`, nil); err == nil {
		t.Error("expected Compile to fail without a schema")
	}
}

func TestParseOrderBy(t *testing.T) {
	allowed := []string{"id", "correctRate"}

	ord, err := ParseOrderBy("", "id", allowed)
	if err != nil || ord.Key != "id" || ord.Desc {
		t.Errorf("expected default ascending id, got %+v (%v)", ord, err)
	}

	ord, err = ParseOrderBy("correctRate desc", "id", allowed)
	if err != nil || ord.Key != "correctRate" || !ord.Desc {
		t.Errorf("expected correctRate desc, got %+v (%v)", ord, err)
	}

	if _, err := ParseOrderBy("name asc", "id", allowed); err == nil {
		t.Error("expected an error for a key outside the whitelist")
	}
	if _, err := ParseOrderBy("id sideways", "id", allowed); err == nil {
		t.Error("expected an error for a bad direction")
	}
	if _, err := ParseOrderBy("id asc extra", "id", allowed); err == nil {
		t.Error("expected an error for too many terms")
	}
}
