package optimize

import (
	"testing"

	"github.com/g960059/circleheart/internal/circulation"
	"github.com/g960059/circleheart/internal/metrics"
	"github.com/g960059/circleheart/internal/params"
)

func TestEvaluate_NoTargetsIsZero(t *testing.T) {
	ps := params.New()
	fitness, err := Evaluate(ps, nil)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if fitness != 0 {
		t.Errorf("Evaluate with no targets = %v, want 0", fitness)
	}
}

func TestEvaluate_SelfConsistentTargetIsZero(t *testing.T) {
	ps := params.New()
	f := circulation.NewFrame(ps)
	traj := circulation.Integrate(initialState(ps), circulation.TimeGrid(), f)
	m, err := metrics.Extract(traj, f)
	if err != nil {
		t.Fatalf("metrics.Extract returned error: %v", err)
	}

	targets := []Target{{Key: metrics.StrokeVolume, Value: m[metrics.StrokeVolume], Weight: 1.0}}
	fitness, err := Evaluate(ps, targets)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if fitness != 0 {
		t.Errorf("Evaluate against its own metric value = %v, want 0", fitness)
	}
}

func TestEvaluate_UnknownTargetKeyContributesNothing(t *testing.T) {
	ps := params.New()
	fitness, err := Evaluate(ps, []Target{{Key: "not_a_real_metric", Value: 1e9, Weight: 1.0}})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if fitness != 0 {
		t.Errorf("Evaluate with unknown target key = %v, want 0", fitness)
	}
}

func TestEvaluate_MismatchedTargetIsPositive(t *testing.T) {
	ps := params.New()
	fitness, err := Evaluate(ps, []Target{{Key: metrics.StrokeVolume, Value: -1e6, Weight: 1.0}})
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if fitness <= 0 {
		t.Errorf("Evaluate against a wildly wrong target = %v, want > 0", fitness)
	}
}
