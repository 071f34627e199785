package query

import (
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	got := Expand([]string{"matricula"})

	want := map[string]bool{
		"matricula":    true,
		"inscripcion":  true,
		"registro":     true,
		"matricularse": true,
		"inscribirse":  true,
	}
	if len(got) != len(want) {
		t.Fatalf("Expand returned %d terms, want %d: %v", len(got), len(want), got)
	}
	for _, term := range got {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
	}
}

func TestExpandSynonymPullsCanonical(t *testing.T) {
	// Matching a synonym adds the canonical term and its siblings.
	got := Expand([]string{"inscripcion"})
	found := map[string]bool{}
	for _, term := range got {
		found[term] = true
	}
	for _, term := range []string{"matricula", "registro", "inscribirse"} {
		if !found[term] {
			t.Errorf("expansion of \"inscripcion\" missing %q: %v", term, got)
		}
	}
}

func TestExpandUnknownTokensPassThrough(t *testing.T) {
	got := Expand([]string{"zzz", "qqq"})
	if !reflect.DeepEqual(got, []string{"zzz", "qqq"}) {
		t.Errorf("Expand = %v, want pass-through", got)
	}
}

func TestExpandDeterministic(t *testing.T) {
	tokens := []string{"matricula", "pago", "creditos"}
	first := Expand(tokens)
	for i := 0; i < 10; i++ {
		if again := Expand(tokens); !reflect.DeepEqual(first, again) {
			t.Fatalf("Expand order unstable: %v vs %v", first, again)
		}
	}
}

func TestExpandNoDuplicates(t *testing.T) {
	// "costo" and "tasa" share an entry; the union must stay duplicate-free.
	got := Expand([]string{"costo", "tasa"})
	seen := map[string]int{}
	for _, term := range got {
		seen[term]++
		if seen[term] > 1 {
			t.Errorf("duplicate term %q in %v", term, got)
		}
	}
}

func TestExpandOneLevelOnly(t *testing.T) {
	// "tercera" expands to "tercera matricula", but that synonym must not
	// recursively pull in the "matricula" entry's synonyms.
	got := Expand([]string{"tercera"})
	for _, term := range got {
		if term == "inscripcion" {
			t.Errorf("expansion recursed across entries: %v", got)
		}
	}
}
