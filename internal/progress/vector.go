package progress

// StageState is the display state of one stage in a progress vector.
type StageState int

const (
	StatePending StageState = iota
	StateInProgress
	StateCompleted
)

var stageStateNames = map[StageState]string{
	StatePending:    "pending",
	StateInProgress: "in-progress",
	StateCompleted:  "completed",
}

func (s StageState) String() string {
	return stageStateNames[s]
}

func (s StageState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Vector is the five-stage fulfillment projection shown to users. It is
// derived on every read and never persisted.
type Vector struct {
	Manufacturing StageState `json:"manufacturing"`
	MfgQC         StageState `json:"mfg_qc"`
	Packaging     StageState `json:"packaging"`
	PkgQC         StageState `json:"pkg_qc"`
	Shipped       StageState `json:"shipped"`
}

// baseVector returns the progress vector implied by the coarse lifecycle
// stage alone, before any QC sub-status overrides are applied. Both StageNew
// and StageManufacture project onto "manufacturing underway": the dashboard
// shows the first bar active as soon as a line exists.
func baseVector(stage Stage) Vector {
	switch stage {
	case StageNew, StageManufacture:
		return Vector{Manufacturing: StateInProgress}
	case StageMfgQC:
		return Vector{
			Manufacturing: StateCompleted,
			MfgQC:         StateInProgress,
		}
	case StagePackaging:
		return Vector{
			Manufacturing: StateCompleted,
			MfgQC:         StateCompleted,
			Packaging:     StateInProgress,
		}
	case StagePkgQC:
		return Vector{
			Manufacturing: StateCompleted,
			MfgQC:         StateCompleted,
			Packaging:     StateCompleted,
			PkgQC:         StateInProgress,
		}
	case StageShipping:
		return Vector{
			Manufacturing: StateCompleted,
			MfgQC:         StateCompleted,
			Packaging:     StateCompleted,
			PkgQC:         StateCompleted,
			Shipped:       StateInProgress,
		}
	case StageShipped, StageDelivered:
		return Vector{
			Manufacturing: StateCompleted,
			MfgQC:         StateCompleted,
			Packaging:     StateCompleted,
			PkgQC:         StateCompleted,
			Shipped:       StateCompleted,
		}
	default:
		return Vector{Manufacturing: StateInProgress}
	}
}
