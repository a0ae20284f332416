package progress

// ViewMode says whether progress is rendered once per order or once per line
// item.
type ViewMode string

const (
	ViewCombined ViewMode = "combined"
	ViewItemWise ViewMode = "item-wise"
)

// ViewerRole is passed explicitly by the caller instead of being read from
// ambient session state, so role-dependent branches are part of the function
// signature.
type ViewerRole string

const (
	RoleSeller ViewerRole = "seller"
	RoleAdmin  ViewerRole = "admin"
)

// ResolveView decides which progress view to render. An order with a single
// line always gets the combined view; there is nothing item-wise to show.
// Multi-line orders default to item-wise for sellers, who work line by line,
// and combined for admins, who triage whole orders; an explicit toggle from
// the viewer wins over either default. Pure display decision, no side
// effects.
func ResolveView(lineCount int, role ViewerRole, requested ViewMode) ViewMode {
	if lineCount <= 1 {
		return ViewCombined
	}
	switch requested {
	case ViewCombined, ViewItemWise:
		return requested
	}
	if role == RoleAdmin {
		return ViewCombined
	}
	return ViewItemWise
}
