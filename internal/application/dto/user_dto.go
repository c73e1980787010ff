package dto

import "github.com/jhoicas/zenith-pos/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión. BranchID es opcional: por defecto
// la primera sucursal asignada al usuario.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	BranchID string `json:"branchId"`
}

// LoginResponse token de sesión más el usuario y la vista inicial.
type LoginResponse struct {
	Token    string        `json:"token"`
	User     UserResponse  `json:"user"`
	BranchID string        `json:"branchId"`
	Views    []entity.View `json:"views"`
	View     entity.View   `json:"view"`
}

// UserResponse salida de un usuario (sin credenciales).
type UserResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email"`
	Assignments []entity.BranchAssignment `json:"assignments"`
}

// SaveUserRequest alta o edición de usuario. Password vacío en la edición conserva la actual.
type SaveUserRequest struct {
	Name        string                    `json:"name"`
	Email       string                    `json:"email"`
	Password    string                    `json:"password"`
	Assignments []entity.BranchAssignment `json:"assignments"`
}

// AssignRoleRequest asigna un rol a un usuario en una sucursal.
type AssignRoleRequest struct {
	BranchID string `json:"branchId"`
	RoleID   string `json:"roleId"`
}

// SaveRoleRequest alta o edición de rol.
type SaveRoleRequest struct {
	Name        string        `json:"name"`
	Permissions []entity.View `json:"permissions"`
}

// GrantViewRequest agrega una vista a los permisos de un rol.
type GrantViewRequest struct {
	View entity.View `json:"view"`
}

// RoleResponse rol con sus permisos efectivos.
type RoleResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Permissions []entity.View `json:"permissions"`
	Locked      bool          `json:"locked"`
}

// ViewsResponse vistas accesibles del usuario en la sucursal activa.
type ViewsResponse struct {
	BranchID string        `json:"branchId"`
	RoleID   string        `json:"roleId"`
	RoleName string        `json:"roleName"`
	Views    []entity.View `json:"views"`
	View     entity.View   `json:"view"`
}
