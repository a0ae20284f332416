package progress

import "testing"

func TestResolveView(t *testing.T) {
	tests := []struct {
		name      string
		lineCount int
		role      ViewerRole
		requested ViewMode
		want      ViewMode
	}{
		{"single line always combined", 1, RoleSeller, "", ViewCombined},
		{"single line ignores toggle", 1, RoleAdmin, ViewItemWise, ViewCombined},
		{"empty order combined", 0, RoleSeller, "", ViewCombined},
		{"multi line seller defaults item-wise", 3, RoleSeller, "", ViewItemWise},
		{"multi line admin defaults combined", 3, RoleAdmin, "", ViewCombined},
		{"seller toggle to combined honored", 3, RoleSeller, ViewCombined, ViewCombined},
		{"admin toggle to item-wise honored", 3, RoleAdmin, ViewItemWise, ViewItemWise},
		{"unknown toggle falls back to role default", 2, RoleSeller, "sideways", ViewItemWise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveView(tt.lineCount, tt.role, tt.requested)
			if got != tt.want {
				t.Errorf("ResolveView(%d, %q, %q) = %q, want %q",
					tt.lineCount, tt.role, tt.requested, got, tt.want)
			}
		})
	}
}
