package workclock

const (
	// Working more than six gross hours triggers the statutory break.
	breakThresholdHours   = 6.0
	mandatoryBreakMinutes = 30

	maxBreakOverrideMinutes = minutesPerDay
)

// GrossHours returns the elapsed hours between check-in and check-out.
// A check-out numerically earlier than the check-in means the shift
// crossed midnight and is counted into the following day. No rounding
// is applied here; callers round the clock values beforehand via
// RoundEmployerFavor when the rounding policy is active.
func GrossHours(in, out Clock) float64 {
	inMin := in.Minutes()
	outMin := out.Minutes()
	if outMin < inMin {
		outMin += minutesPerDay
	}
	return float64(outMin-inMin) / 60
}

// BreakMinutes derives the mandated unpaid break from gross worked
// hours. The boundary is exclusive: exactly 6.0 hours requires no
// break. The comparison is exact on purpose, statutory thresholds are
// not approximated with a tolerance.
func BreakMinutes(grossHours float64) int {
	if grossHours > breakThresholdHours {
		return mandatoryBreakMinutes
	}
	return 0
}

// NetHours computes the payable figure for one entry. A non-nil
// breakOverride is used verbatim as break minutes, which lets callers
// honor breaks the employer actually tracked; otherwise the statutory
// break is derived from the gross hours.
func NetHours(in, out Clock, breakOverride *int) (net float64, breakMin int, gross float64, err error) {
	gross = GrossHours(in, out)

	if breakOverride != nil {
		if *breakOverride < 0 || *breakOverride > maxBreakOverrideMinutes {
			return 0, 0, 0, ErrInvalidBreakOverride
		}
		breakMin = *breakOverride
	} else {
		breakMin = BreakMinutes(gross)
	}

	net = gross - float64(breakMin)/60
	return net, breakMin, gross, nil
}
