package workclock

// Overlaps reports whether two clock ranges share any instant. Ranges
// are half-open: touching exactly at a boundary is not an overlap. A
// range whose end is numerically earlier than its start crosses
// midnight.
//
// Normalization runs in two passes. Each range first unwraps its own
// midnight crossing by pushing the end into the next day. Then, when
// exactly one range is overnight and the other starts inside its
// early-morning tail (before the overnight range's original, unshifted
// end), the day range is pushed forward a full day so both sit on the
// same timeline. Skipping that second pass produces false negatives
// for pairs like 22:00-06:00 against 04:00-12:00.
func Overlaps(start1, end1, start2, end2 Clock) bool {
	s1, e1 := start1.Minutes(), end1.Minutes()
	s2, e2 := start2.Minutes(), end2.Minutes()

	origEnd1 := e1
	origEnd2 := e2

	overnight1 := e1 < s1
	overnight2 := e2 < s2
	if overnight1 {
		e1 += minutesPerDay
	}
	if overnight2 {
		e2 += minutesPerDay
	}

	if overnight1 && !overnight2 && s2 < origEnd1 {
		s2 += minutesPerDay
		e2 += minutesPerDay
	}
	if overnight2 && !overnight1 && s1 < origEnd2 {
		s1 += minutesPerDay
		e1 += minutesPerDay
	}

	return s1 < e2 && s2 < e1
}
