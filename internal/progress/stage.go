package progress

import "strings"

// Stage is one step of an order line's physical fulfillment lifecycle.
// The zero value is StageNew, which is also the fail-open fallback for
// unrecognized input.
type Stage int

const (
	StageNew Stage = iota
	StageManufacture
	StageMfgQC
	StagePackaging
	StagePkgQC
	StageShipping
	StageShipped
	StageDelivered
)

var stageNames = map[Stage]string{
	StageNew:         "new",
	StageManufacture: "manufacture",
	StageMfgQC:       "mfg_qc",
	StagePackaging:   "packaging",
	StagePkgQC:       "pkg_qc",
	StageShipping:    "shipping",
	StageShipped:     "shipped",
	StageDelivered:   "delivered",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "new"
}

func (s Stage) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// NormalizeStage maps a free-form lifecycle status string onto a canonical
// Stage. Matching is case-insensitive and tolerant of surrounding whitespace
// and hyphen/space separators. Anything unrecognized degrades to StageNew so
// a garbled status from the upstream system never halts the dashboard.
func NormalizeStage(raw string) Stage {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")

	switch key {
	case "new":
		return StageNew
	case "manufacture", "manufacturing":
		return StageManufacture
	case "mfg_qc", "mfgqc":
		return StageMfgQC
	case "packaging":
		return StagePackaging
	case "pkg_qc", "pkgqc":
		return StagePkgQC
	case "shipping":
		return StageShipping
	case "shipped":
		return StageShipped
	case "delivered":
		return StageDelivered
	default:
		return StageNew
	}
}

// QCStatus is the fine-grained review outcome of one QC gate, independent of
// the coarse lifecycle stage.
type QCStatus int

const (
	QCUnset QCStatus = iota
	QCPending
	QCInProgress
	QCApproved
	QCRejected
)

var qcStatusNames = map[QCStatus]string{
	QCUnset:      "",
	QCPending:    "pending",
	QCInProgress: "in_progress",
	QCApproved:   "approved",
	QCRejected:   "rejected",
}

func (q QCStatus) String() string {
	return qcStatusNames[q]
}

// NormalizeQCStatus maps a free-form QC sub-status string onto a canonical
// QCStatus. "approved" and "completed" are the same terminal outcome in the
// upstream system. Unknown values degrade to QCUnset (no override).
func NormalizeQCStatus(raw string) QCStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")

	switch key {
	case "pending":
		return QCPending
	case "in_progress", "inprogress":
		return QCInProgress
	case "approved", "completed":
		return QCApproved
	case "rejected":
		return QCRejected
	default:
		return QCUnset
	}
}

// QCType identifies which QC gate a submission belongs to.
type QCType string

const (
	QCTypeMfg QCType = "mfg_qc"
	QCTypePkg QCType = "pkg_qc"
)
