package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModule_AddModelRejectsDuplicates(t *testing.T) {
	mod := NewModule("app.schemas")

	if err := mod.AddModel(&stubModel{name: "Profile"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := mod.AddModel(&stubModel{name: "Profile"}); err == nil {
		t.Fatal("expected error for duplicate model name")
	}
}

func TestModule_ModelsLexicalOrder(t *testing.T) {
	mod := NewModule("app.schemas")
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		mod.MustAddModel(&stubModel{name: name})
	}

	var got []string
	for _, m := range mod.Models() {
		got = append(got, m.Name())
	}
	want := []string{"Alpha", "Mid", "Zeta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model order mismatch (-want +got):\n%s", diff)
	}
}

func TestModule_ContainsRequiresQualifiedPrefix(t *testing.T) {
	parent := NewModule("app.schemas")
	child := NewModule("app.schemas.nested")
	reexport := NewModule("vendor.lib")

	if err := parent.AddModule("nested", child); err != nil {
		t.Fatalf("add child: %v", err)
	}
	if err := parent.AddModule("lib", reexport); err != nil {
		t.Fatalf("add re-export: %v", err)
	}

	if !parent.Contains(child) {
		t.Fatal("child with qualified prefix should be contained")
	}
	if parent.Contains(reexport) {
		t.Fatal("re-exported unrelated module must not be contained")
	}
}

func TestRegistry_LookupMissingIsDetectable(t *testing.T) {
	_, err := Lookup("no.such.module")
	if err == nil {
		t.Fatal("expected lookup failure")
	}
	if !errors.Is(err, ErrModuleNotFound) {
		t.Fatalf("error %v should wrap ErrModuleNotFound", err)
	}
}

func TestRegistry_RegisterRejectsDuplicateNames(t *testing.T) {
	mod := NewModule("model_test.duplicate")
	if err := Register(mod); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := Register(NewModule("model_test.duplicate")); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}

	found, err := Lookup("model_test.duplicate")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != mod {
		t.Fatal("lookup returned a different module")
	}
}
