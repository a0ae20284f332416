package progress

// Submission is the slice of a QC submission record the rejection tracker
// needs: which gate it belongs to, its terminal status, and the reviewer's
// note. Histories are append-only upstream, so counts derived here only ever
// grow over the life of an order line.
type Submission struct {
	Type   QCType
	Status string
	Note   string
}

// RejectionInfo is the per-line rejection summary exposed alongside the
// progress vector, so a consuming view can render a distinct "rejected"
// indicator instead of the vector's plain tri-state color.
type RejectionInfo struct {
	MfgRejectionCount int      `json:"mfg_rejection_count"`
	PkgRejectionCount int      `json:"pkg_rejection_count"`
	RejectionNotes    []string `json:"rejection_notes"`
}

// Rejected reports whether either QC gate has at least one rejection on
// record.
func (r RejectionInfo) Rejected() bool {
	return r.MfgRejectionCount > 0 || r.PkgRejectionCount > 0
}

// TrackRejections folds a line's full submission history, oldest first, into
// per-gate rejection counts and the ordered list of rejection notes.
// Submissions that were approved or are still pending contribute nothing; a
// rejected submission without a note still counts but adds no note.
func TrackRejections(history []Submission) RejectionInfo {
	info := RejectionInfo{}
	for _, sub := range history {
		if NormalizeQCStatus(sub.Status) != QCRejected {
			continue
		}
		switch sub.Type {
		case QCTypeMfg:
			info.MfgRejectionCount++
		case QCTypePkg:
			info.PkgRejectionCount++
		default:
			continue
		}
		if sub.Note != "" {
			info.RejectionNotes = append(info.RejectionNotes, sub.Note)
		}
	}
	return info
}
