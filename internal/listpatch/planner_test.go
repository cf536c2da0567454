package listpatch

import (
	"reflect"
	"testing"
)

func paths(ps ...NumericPath) []NumericPath { return ps }

func TestPlanTransition_NoBaseline(t *testing.T) {
	if got := PlanTransition(nil, NumericPath{2, 1, 2}); got != nil {
		t.Errorf("expected no intermediates without a baseline, got %v", got)
	}
}

func TestPlanTransition_DeepGap(t *testing.T) {
	got := PlanTransition(NumericPath{1}, NumericPath{2, 1, 2, 1, 2})
	want := paths(
		NumericPath{2},
		NumericPath{2, 1},
		NumericPath{2, 1, 1},
		NumericPath{2, 1, 2},
		NumericPath{2, 1, 2, 1},
		NumericPath{2, 1, 2, 1, 1},
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlanTransition_DescendFromSharedPrefix(t *testing.T) {
	got := PlanTransition(NumericPath{2}, NumericPath{2, 1, 2, 1, 2})
	want := paths(
		NumericPath{2, 1},
		NumericPath{2, 1, 1},
		NumericPath{2, 1, 2},
		NumericPath{2, 1, 2, 1},
		NumericPath{2, 1, 2, 1, 1},
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlanTransition_AdjacentIncrement(t *testing.T) {
	if got := PlanTransition(NumericPath{2, 1}, NumericPath{2, 2}); got != nil {
		t.Errorf("expected no intermediates for adjacent increment, got %v", got)
	}
	if got := PlanTransition(NumericPath{2, 2}, NumericPath{3}); got != nil {
		t.Errorf("expected no intermediates when closing a sublist, got %v", got)
	}
}

func TestPlanTransition_FirstChildOfExistingItem(t *testing.T) {
	if got := PlanTransition(NumericPath{1}, NumericPath{1, 1}); got != nil {
		t.Errorf("expected no intermediates descending to first child, got %v", got)
	}
}

func TestPlanTransition_ShallowIncrementRestartsDeeperCounters(t *testing.T) {
	// Once depth 1 rolls from 1 to 2, the old depth-2 value no longer
	// applies: counting under the new "2" restarts at 1.
	got := PlanTransition(NumericPath{1, 1}, NumericPath{2, 2})
	want := paths(NumericPath{2}, NumericPath{2, 1})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlanTransition_WideGapAtOneDepth(t *testing.T) {
	got := PlanTransition(NumericPath{1}, NumericPath{5})
	want := paths(NumericPath{2}, NumericPath{3}, NumericPath{4})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlanTransition_RegressionResetsContext(t *testing.T) {
	// Policy, not derived from the original contract: a value below the
	// baseline abandons the old context instead of failing.
	if got := PlanTransition(NumericPath{3}, NumericPath{2}); got != nil {
		t.Errorf("expected no intermediates on regression, got %v", got)
	}
	if got := PlanTransition(NumericPath{2, 5}, NumericPath{2, 3, 9}); got != nil {
		t.Errorf("expected no intermediates on deep regression, got %v", got)
	}
}

func TestPlanTransition_EqualPaths(t *testing.T) {
	if got := PlanTransition(NumericPath{2, 1}, NumericPath{2, 1}); got != nil {
		t.Errorf("expected no intermediates for repeated path, got %v", got)
	}
}
