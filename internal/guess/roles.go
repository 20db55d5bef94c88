package guess

import (
	"fmt"
	"strings"
)

// Role names a UI element the controller needs.
// Values double as the keys of the layout document.
type Role string

const (
	RoleGuessInput Role = "guess_input"
	RoleSubmit     Role = "submit"
	RoleRestart    Role = "restart"
	RoleOutput     Role = "output"
)

// RequiredRoles returns every role a surface must provide.
func RequiredRoles() []Role {
	return []Role{RoleGuessInput, RoleSubmit, RoleRestart, RoleOutput}
}

// MissingElementError reports roles absent from a surface at startup.
type MissingElementError struct {
	Roles []Role
}

func (e *MissingElementError) Error() string {
	names := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		names[i] = string(r)
	}
	return fmt.Sprintf("missing UI elements: %s", strings.Join(names, ", "))
}

// CheckRoles returns a *MissingElementError listing every required role for
// which has returns false, or nil when the surface is complete.
func CheckRoles(has func(Role) bool) error {
	var missing []Role
	for _, r := range RequiredRoles() {
		if !has(r) {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return &MissingElementError{Roles: missing}
	}
	return nil
}
