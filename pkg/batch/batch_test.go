package batch

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	inputs := make([]string, 500)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("doc-%d", i)
	}

	out, err := Map(context.Background(), inputs, 8, strings.ToUpper)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(inputs) {
		t.Fatalf("len = %d, want %d", len(out), len(inputs))
	}
	for i, got := range out {
		if want := strings.ToUpper(inputs[i]); got != want {
			t.Errorf("out[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestMapSingleWorker(t *testing.T) {
	out, err := Map(context.Background(), []string{"a", "b", "c"}, 1, strings.ToUpper)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != "A" || out[1] != "B" || out[2] != "C" {
		t.Errorf("out = %v", out)
	}
}

func TestMapDefaultWorkers(t *testing.T) {
	out, err := Map(context.Background(), []string{"x"}, 0, strings.ToUpper)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != "X" {
		t.Errorf("out = %v", out)
	}
}

func TestMapEmptyInput(t *testing.T) {
	out, err := Map(context.Background(), nil, 4, strings.ToUpper)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

func TestMapCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := make([]string, 100)
	if _, err := Map(ctx, inputs, 2, strings.ToUpper); err == nil {
		t.Error("expected error from cancelled context")
	}
}
