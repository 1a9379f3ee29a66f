package declmodel

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/goliatone/go-models2ts/pkg/model"
)

func registerModule(t *testing.T, prefix string) *model.Module {
	t.Helper()
	mod := model.NewModule(prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
	if err := model.Register(mod); err != nil {
		t.Fatalf("register module: %v", err)
	}
	return mod
}

const parseFixture = `
models:
  Profile:
    fields:
      - name: username
        type: str
      - name: age
        type: int
        nullable: true
      - name: hobbies
        type: list[str]
  Rank:
    enum: [bronze, silver, gold]
  Kind:
    literal: user
  Pair:
    params: [T]
    fields:
      - name: first
        type: T
      - name: second
        type: T
modules:
  nested:
    models:
      Token:
        fields:
          - name: value
            type: str
            alias: tokenValue
`

func TestParseInto_Fields(t *testing.T) {
	mod := registerModule(t, "declmodel_parse")
	if err := ParseInto(mod, []byte(parseFixture)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	profile, ok := mod.Model("Profile")
	if !ok {
		t.Fatal("expected model Profile")
	}

	want := []model.Field{
		{Name: "username", Type: "str"},
		{Name: "age", Type: "int", Nullable: true},
		{Name: "hobbies", Type: "list[str]"},
	}
	if diff := cmp.Diff(want, profile.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if got := profile.QualifiedName(); got != mod.Name()+".Profile" {
		t.Fatalf("qualified name = %q", got)
	}
	if !profile.Concrete() {
		t.Fatal("Profile should be concrete")
	}
}

func TestParseInto_TemplatesAreNotConcrete(t *testing.T) {
	mod := registerModule(t, "declmodel_parse")
	if err := ParseInto(mod, []byte(parseFixture)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	pair, ok := mod.Model("Pair")
	if !ok {
		t.Fatal("expected model Pair")
	}
	if pair.Concrete() {
		t.Fatal("template model with unbound parameters must not be concrete")
	}
}

func TestParseInto_SubmodulesRegisterUnderQualifiedNames(t *testing.T) {
	mod := registerModule(t, "declmodel_parse")
	if err := ParseInto(mod, []byte(parseFixture)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	child, err := model.Lookup(mod.Name() + ".nested")
	if err != nil {
		t.Fatalf("submodule not registered: %v", err)
	}
	token, ok := child.Model("Token")
	if !ok {
		t.Fatal("expected model Token in submodule")
	}
	if got := token.Fields()[0].Key(); got != "tokenValue" {
		t.Fatalf("alias key = %q, want tokenValue", got)
	}
	if !mod.Contains(child) {
		t.Fatal("submodule should satisfy the containment prefix check")
	}
}

func TestParseInto_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "field and enum together",
			doc: `
models:
  Broken:
    enum: [a, b]
    fields:
      - name: x
        type: str
`,
		},
		{
			name: "invalid extra policy",
			doc: `
models:
  Broken:
    extra: maybe
    fields:
      - name: x
        type: str
`,
		},
		{
			name: "duplicate field",
			doc: `
models:
  Broken:
    fields:
      - name: x
        type: str
      - name: x
        type: int
`,
		},
		{
			name: "bad type expression",
			doc: `
models:
  Broken:
    fields:
      - name: x
        type: list[str
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mod := registerModule(t, "declmodel_invalid")
			if err := ParseInto(mod, []byte(tc.doc)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}
