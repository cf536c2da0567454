package listpatch

// PlanTransition computes the ordered intermediate paths needed to bridge
// the gap between the established baseline and the next parsed path, like a
// numeric odometer rolling from one reading to the next. The returned
// sequence never contains target itself.
//
// A nil baseline means no numbering context exists (start of input or just
// after an unparseable line); the target is then accepted as-is. A target
// component below the baseline at the first unmatched depth is treated the
// same way: the old context no longer applies and the target starts a
// fresh one.
//
// Once the odometer increments at some depth, the baseline's deeper
// components are invalidated and counting at every deeper depth restarts
// at 1: baseline [1 1] to target [2 2] yields [2] then [2 1].
func PlanTransition(baseline, target NumericPath) []NumericPath {
	if len(baseline) == 0 {
		return nil
	}
	var intermediates []NumericPath
	established := make(NumericPath, 0, len(target))
	diverged := false
	for d := 0; d < len(target); d++ {
		start := 0
		if !diverged && d < len(baseline) {
			switch {
			case target[d] < baseline[d]:
				// Regression below the established numbering: reset
				// context and accept the target as a fresh start.
				return nil
			case target[d] == baseline[d]:
				// Already shown via the baseline; nothing to emit here.
				established = append(established, target[d])
				continue
			}
			start = baseline[d]
		}
		for v := start + 1; v <= target[d]; v++ {
			if d == len(target)-1 && v == target[d] {
				break // the real line carries this path
			}
			intermediates = append(intermediates, established.child(v))
		}
		established = append(established, target[d])
		diverged = true
	}
	return intermediates
}
