package declmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-models2ts/pkg/model"
)

const schemaFixture = `
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
  LoginResponseData:
    fields:
      - name: token
        type: str
      - name: profile
        type: Profile
  Rank:
    enum: [bronze, silver, gold]
  Node:
    fields:
      - name: children
        type: list[Node]
`

func generateFixtureMaster(t *testing.T) map[string]any {
	t.Helper()

	mod := registerModule(t, "declmodel_schema")
	if err := ParseInto(mod, []byte(schemaFixture)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	var models []model.Model
	for _, m := range mod.Models() {
		models = append(models, m)
	}

	doc, err := GenerateMaster(models)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return doc
}

func definitions(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()
	defs, ok := doc["definitions"].(map[string]any)
	if !ok {
		t.Fatalf("missing definitions side-table: %v", doc)
	}
	return defs
}

func TestGenerateMaster_WrapperShape(t *testing.T) {
	doc := generateFixtureMaster(t)

	if got := doc["title"]; got != model.WrapperName {
		t.Fatalf("wrapper title = %v", got)
	}

	defs := definitions(t, doc)
	for _, name := range []string{"Profile", "LoginResponseData", "Rank", "Node"} {
		if _, ok := defs[name]; !ok {
			t.Fatalf("definitions missing %q", name)
		}
	}

	props, _ := doc["properties"].(map[string]any)
	ref, _ := props["Profile"].(map[string]any)
	if got := ref["$ref"]; got != "#/definitions/Profile" {
		t.Fatalf("wrapper property ref = %v", got)
	}

	required, _ := doc["required"].([]any)
	if len(required) != 4 {
		t.Fatalf("wrapper required = %v, want one entry per model", required)
	}
}

func TestGenerateMaster_FieldNodes(t *testing.T) {
	defs := definitions(t, generateFixtureMaster(t))

	profile, _ := defs["Profile"].(map[string]any)
	props, _ := profile["properties"].(map[string]any)

	want := map[string]any{
		"username": map[string]any{"type": "string", "title": "Username"},
		"age":      map[string]any{"type": "integer", "title": "Age"},
		"hobbies": map[string]any{
			"type":  "array",
			"title": "Hobbies",
			"items": map[string]any{"type": "string"},
		},
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("Profile properties mismatch (-want +got):\n%s", diff)
	}

	// The legacy dialect leaves nullable fields as their bare type and out of
	// required; the cleaner adds the null union later.
	required, _ := profile["required"].([]any)
	wantRequired := []any{"username", "hobbies"}
	if diff := cmp.Diff(wantRequired, required); diff != "" {
		t.Fatalf("Profile required mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateMaster_SelfReference(t *testing.T) {
	defs := definitions(t, generateFixtureMaster(t))

	node, _ := defs["Node"].(map[string]any)
	props, _ := node["properties"].(map[string]any)
	children, _ := props["children"].(map[string]any)
	items, _ := children["items"].(map[string]any)
	if got := items["$ref"]; got != "#/definitions/Node" {
		t.Fatalf("self reference = %v", got)
	}
}

func TestGenerateMaster_EnumBoilerplate(t *testing.T) {
	defs := definitions(t, generateFixtureMaster(t))

	rank, _ := defs["Rank"].(map[string]any)
	if got := rank["description"]; got != EnumDescription {
		t.Fatalf("enum description = %v, want the canned boilerplate", got)
	}
}

func TestGenerateMaster_ExtraPolicy(t *testing.T) {
	doc := `
models:
  Closed:
    extra: forbid
    fields:
      - name: x
        type: str
  Open:
    extra: allow
    fields:
      - name: x
        type: str
  Loose:
    fields:
      - name: x
        type: str
`
	mod := registerModule(t, "declmodel_extra")
	if err := ParseInto(mod, []byte(doc)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	var models []model.Model
	for _, m := range mod.Models() {
		models = append(models, m)
	}
	master, err := GenerateMaster(models)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defs := definitions(t, master)

	closed, _ := defs["Closed"].(map[string]any)
	if got := closed["additionalProperties"]; got != false {
		t.Fatalf("forbid policy additionalProperties = %v", got)
	}
	open, _ := defs["Open"].(map[string]any)
	if got := open["additionalProperties"]; got != true {
		t.Fatalf("allow policy additionalProperties = %v", got)
	}
	loose, _ := defs["Loose"].(map[string]any)
	if _, present := loose["additionalProperties"]; present {
		t.Fatal("unset policy must omit additionalProperties")
	}
}

func TestGenerateMaster_UnresolvedReference(t *testing.T) {
	doc := `
models:
  Broken:
    fields:
      - name: other
        type: Missing
`
	mod := registerModule(t, "declmodel_unresolved")
	if err := ParseInto(mod, []byte(doc)); err != nil {
		t.Fatalf("parse: %v", err)
	}

	broken, _ := mod.Model("Broken")
	if _, err := GenerateMaster([]model.Model{broken}); err == nil {
		t.Fatal("expected unresolved reference error")
	}
}

func TestTitleize(t *testing.T) {
	cases := map[string]string{
		"age":        "Age",
		"user_name":  "User Name",
		"tokenValue": "TokenValue",
	}
	for in, want := range cases {
		if got := titleize(in); got != want {
			t.Fatalf("titleize(%q) = %q, want %q", in, got, want)
		}
	}
}
