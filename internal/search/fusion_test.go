package search

import (
	"testing"

	"github.com/quipu-ai/matriq/internal/query"
)

func TestWeightsFor(t *testing.T) {
	add := func(intents ...query.Intent) query.IntentSet {
		var s query.IntentSet
		for _, i := range intents {
			s.Add(i)
		}
		return s
	}

	tests := []struct {
		name    string
		intents query.IntentSet
		want    Weights
	}{
		{name: "authority", intents: add(query.IntentAuthority), want: Weights{0.05, 0.95}},
		{name: "exception", intents: add(query.IntentException), want: Weights{0.05, 0.95}},
		{name: "definition", intents: add(query.IntentDefinition), want: Weights{0.05, 0.95}},
		{name: "validation", intents: add(query.IntentValidation), want: Weights{0.10, 0.90}},
		{name: "validation with amount defers to cost", intents: add(query.IntentValidation, query.IntentAmount, query.IntentCost), want: Weights{0.20, 0.80}},
		{name: "cost generic", intents: add(query.IntentCost), want: Weights{0.20, 0.80}},
		{name: "cost payment procedure", intents: add(query.IntentCost, query.IntentPaymentProcedure), want: Weights{0.05, 0.95}},
		{name: "cost with place", intents: add(query.IntentCost, query.IntentPlace), want: Weights{0.05, 0.95}},
		{name: "restriction", intents: add(query.IntentRestriction), want: Weights{0.30, 0.70}},
		{name: "date", intents: add(query.IntentDate), want: Weights{0.50, 0.50}},
		{name: "place", intents: add(query.IntentPlace), want: Weights{0.50, 0.50}},
		{name: "none", intents: add(), want: Weights{0.70, 0.30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightsFor(tt.intents); got != tt.want {
				t.Errorf("WeightsFor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Same intent set, same weights: selection depends on nothing else.
func TestWeightsForDeterministic(t *testing.T) {
	var s query.IntentSet
	s.Add(query.IntentCost)
	first := WeightsFor(s)
	for i := 0; i < 5; i++ {
		if WeightsFor(s) != first {
			t.Fatal("WeightsFor not deterministic")
		}
	}
}

func TestFuseGates(t *testing.T) {
	w := Weights{Semantic: 0.5, Keyword: 0.5}

	semantic := map[int]float64{0: 0.05, 1: 0.5}
	keyword := map[int]float64{0: 3.0, 2: 10.0}

	got := Fuse(semantic, keyword, w, -1)

	// Doc 0 fails both gates; doc 1 qualifies on semantic alone; doc 2 on
	// keyword alone with no semantic score at all.
	if len(got) != 2 {
		t.Fatalf("admitted %d candidates, want 2", len(got))
	}
	for _, c := range got {
		if c.Index == 0 {
			t.Error("doc 0 should have been gated out")
		}
	}
}

func TestFuseKeywordOnlyAdmission(t *testing.T) {
	// Semantic axis absent entirely: admission still works on keyword alone.
	got := Fuse(nil, map[int]float64{0: 6.0, 1: 1.0}, Weights{0.7, 0.3}, -1)
	if len(got) != 1 || got[0].Index != 0 {
		t.Fatalf("got %+v, want only doc 0", got)
	}
	if got[0].Semantic != 0 {
		t.Errorf("missing semantic entry should read as zero, got %v", got[0].Semantic)
	}
}

func TestFuseCombination(t *testing.T) {
	w := Weights{Semantic: 0.2, Keyword: 0.8}
	semantic := map[int]float64{0: 0.9}
	keyword := map[int]float64{0: 100}

	got := Fuse(semantic, keyword, w, -1)
	if len(got) != 1 {
		t.Fatalf("got %d candidates", len(got))
	}
	want := 0.9*0.2 + 100*0.8
	if got[0].Score != want {
		t.Errorf("Score = %v, want %v", got[0].Score, want)
	}
}

func TestFuseTieBreakByIndex(t *testing.T) {
	w := Weights{Semantic: 0, Keyword: 1}
	keyword := map[int]float64{3: 50, 1: 50, 2: 50, 0: 50}

	got := Fuse(nil, keyword, w, -1)
	if len(got) != 4 {
		t.Fatalf("got %d candidates", len(got))
	}
	for i, c := range got {
		if c.Index != i {
			t.Errorf("position %d has index %d, want ascending order on ties", i, c.Index)
		}
	}
}

func TestFuseTruncation(t *testing.T) {
	keyword := map[int]float64{0: 10, 1: 20, 2: 30, 3: 40}
	got := Fuse(nil, keyword, Weights{0.5, 0.5}, 2)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Index != 3 || got[1].Index != 2 {
		t.Errorf("top-2 = [%d, %d], want [3, 2]", got[0].Index, got[1].Index)
	}
}

func TestFuseEmpty(t *testing.T) {
	if got := Fuse(nil, nil, Weights{0.5, 0.5}, 3); len(got) != 0 {
		t.Errorf("empty inputs produced %d candidates", len(got))
	}
}
