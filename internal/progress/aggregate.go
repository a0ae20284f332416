package progress

// ResolveOrder computes one combined progress vector for a whole order from
// its lines' statuses. The displayed progress is gated by the least-advanced
// line (an order is not "packaging" while any item is still "new"), with
// rejection and pending signals from any line overlaid afterwards.
//
// An empty line list yields an all-pending vector rather than an error: this
// is a display derivation and under-reporting progress is cheaper than
// crashing a dashboard.
func ResolveOrder(lines []LineStatus) Vector {
	if len(lines) == 0 {
		return Vector{}
	}

	min := NormalizeStage(lines[0].Lifecycle)
	for _, ls := range lines[1:] {
		if s := NormalizeStage(ls.Lifecycle); s < min {
			min = s
		}
	}
	vec := baseVector(min)

	var mfgPending, pkgPending, mfgRejected, pkgRejected bool
	for _, ls := range lines {
		switch NormalizeQCStatus(ls.MfgQC) {
		case QCPending, QCInProgress:
			mfgPending = true
		case QCRejected:
			mfgRejected = true
		}
		switch NormalizeQCStatus(ls.PkgQC) {
		case QCPending, QCInProgress:
			pkgPending = true
		case QCRejected:
			pkgRejected = true
		}
	}

	// Pending overlays first: an unreviewed gate on any line pulls the
	// aggregate gate back to in-progress and holds the next stage unless it
	// already completed.
	if mfgPending {
		vec.MfgQC = StateInProgress
		if vec.Packaging != StateCompleted {
			vec.Packaging = StatePending
		}
	}
	if pkgPending {
		vec.PkgQC = StateInProgress
		if vec.Shipped != StateCompleted {
			vec.Shipped = StatePending
		}
	}

	// Rejection overlays last so they always win: a single rejected item
	// blocks the aggregate's forward progress no matter how far the other
	// items are.
	if mfgRejected {
		vec.Packaging = StatePending
	}
	if pkgRejected {
		vec.Shipped = StatePending
	}

	return vec
}
