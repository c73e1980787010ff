package entity

// BranchAssignment rol de un usuario en una sucursal.
type BranchAssignment struct {
	BranchID string `json:"branchId"`
	RoleID   string `json:"roleId"`
}

// User usuario del sistema. Un usuario puede tener roles distintos por sucursal.
type User struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"passwordHash,omitempty"` // bcrypt
	Assignments  []BranchAssignment `json:"assignments"`

	// Forma heredada: rol por nombre y contraseña en base64. Se migra al cargar
	// (rol) y en el primer inicio de sesión (contraseña).
	LegacyRole     string `json:"role,omitempty"`
	LegacyPassword string `json:"password,omitempty"`
}

// RoleIDFor devuelve el rol asignado en la sucursal ("" si no tiene).
func (u User) RoleIDFor(branchID string) string {
	for _, a := range u.Assignments {
		if a.BranchID == branchID {
			return a.RoleID
		}
	}
	return ""
}
