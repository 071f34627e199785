package embedding

import (
	"context"
	"math"
	"testing"
)

func TestMockEmbedderDeterministic(t *testing.T) {
	e := NewMockEmbedder(64)
	ctx := context.Background()

	a, err := e.Embed(ctx, "matricula por excepcion")
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Embed(ctx, "matricula por excepcion")
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("embedding not deterministic at dim %d", i)
		}
	}
}

func TestMockEmbedderUnitLength(t *testing.T) {
	e := NewMockEmbedder(32)
	vec, err := e.Embed(context.Background(), "pago de tasa educacional")
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if math.Abs(sum-1) > 1e-5 {
		t.Errorf("norm^2 = %v, want 1", sum)
	}
}

func TestMockEmbedderSharedTokensCorrelate(t *testing.T) {
	e := NewMockEmbedder(64)
	ctx := context.Background()

	a, _ := e.Embed(ctx, "cronograma de matricula")
	b, _ := e.Embed(ctx, "cronograma de pagos")

	dot := func(x, y []float32) float64 {
		var s float64
		for i := range x {
			s += float64(x[i]) * float64(y[i])
		}
		return s
	}
	if dot(a, b) <= 0 {
		t.Errorf("texts sharing tokens should have positive similarity, got %.3f", dot(a, b))
	}
	if same := dot(a, a); math.Abs(same-1) > 1e-5 {
		t.Errorf("self-similarity = %.3f, want 1", same)
	}
}

func TestMockEmbedderDimensions(t *testing.T) {
	if NewMockEmbedder(0).Dimensions() != 64 {
		t.Error("non-positive dimensions should fall back to 64")
	}
	if NewMockEmbedder(128).Dimensions() != 128 {
		t.Error("dimensions not honored")
	}
}
