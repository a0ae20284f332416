package progress

// LineStatus is the stable per-line shape the resolvers consume: one coarse
// lifecycle status plus the two independent QC sub-statuses. Raw strings are
// accepted so normalization happens in exactly one place.
type LineStatus struct {
	Lifecycle string
	MfgQC     string
	PkgQC     string
}

// ResolveLine computes the progress vector for a single order line.
//
// The lifecycle status alone is coarse: it cannot distinguish "QC not yet
// reviewed" from "QC approved" at the same stage. When a QC sub-status is
// present it is the authoritative fine-grained signal and wins over the base
// table, with one constraint: a rejected or unresolved QC gate must never let
// the following stage appear unblocked.
func ResolveLine(ls LineStatus) Vector {
	stage := NormalizeStage(ls.Lifecycle)
	vec := baseVector(stage)

	vec = applyQCOverride(vec, stage, NormalizeQCStatus(ls.MfgQC), gateMfgQC)
	vec = applyQCOverride(vec, stage, NormalizeQCStatus(ls.PkgQC), gatePkgQC)

	return vec
}

// qcGate identifies which pair of vector stages a QC sub-status acts on: the
// gate's own stage and the next stage it blocks.
type qcGate int

const (
	gateMfgQC qcGate = iota
	gatePkgQC
)

func (g qcGate) read(v Vector) (gate, next StageState) {
	if g == gateMfgQC {
		return v.MfgQC, v.Packaging
	}
	return v.PkgQC, v.Shipped
}

func (g qcGate) write(v Vector, gate, next StageState) Vector {
	if g == gateMfgQC {
		v.MfgQC = gate
		v.Packaging = next
	} else {
		v.PkgQC = gate
		v.Shipped = next
	}
	return v
}

// applyQCOverride folds one QC sub-status into the vector:
//
//   - pending / in-progress: the gate reads in-progress and the next stage is
//     forced back to pending, even where the base table already marked it
//     completed. A line that has physically shipped is exempt; a stale
//     unreviewed sub-status cannot drag a shipped item backwards.
//   - approved: the gate reads completed; a pending next stage is promoted to
//     in-progress (the gate no longer blocks it).
//   - rejected: the gate keeps its base-table value so the caller can render
//     the rejection marker from RejectionInfo rather than the vector, but the
//     next stage is forced to pending unconditionally. Rejection gates even a
//     shipped lifecycle: a rejected gate never shows the next stage advanced.
func applyQCOverride(vec Vector, stage Stage, status QCStatus, g qcGate) Vector {
	gate, next := g.read(vec)

	switch status {
	case QCPending, QCInProgress:
		if stage >= StageShipped {
			return vec
		}
		return g.write(vec, StateInProgress, StatePending)
	case QCApproved:
		if next == StatePending {
			next = StateInProgress
		}
		return g.write(vec, StateCompleted, next)
	case QCRejected:
		return g.write(vec, gate, StatePending)
	default:
		return vec
	}
}
