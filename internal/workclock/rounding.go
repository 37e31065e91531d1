package workclock

const roundingGridMinutes = 5

// RoundEmployerFavor snaps t onto the 5-minute grid so that the paid
// interval never grows: check-ins round up to the next boundary,
// check-outs round down to the previous one. Times already on the grid
// are returned unchanged. Rounding a check-in past 23:59 wraps to 00:00.
func RoundEmployerFavor(t Clock, checkIn bool) Clock {
	rem := t.Minute % roundingGridMinutes
	if rem == 0 {
		return t
	}
	if checkIn {
		t.Minute += roundingGridMinutes - rem
		if t.Minute >= 60 {
			t.Minute -= 60
			t.Hour = (t.Hour + 1) % 24
		}
		return t
	}
	t.Minute -= rem
	return t
}
