package user

import (
	"strings"

	"github.com/SADMAN30102001SAKIB/ruet-undergraduate-result-management-system-sub001/core"
)

// Roles
const (
	// Admin
	RoleAdmin           = "admin:"
	RoleAdminController = "admin:controller" // controller of examinations
	RoleAdminHead       = "admin:head"       // head of department

	// Teacher
	RoleTeacher = "teacher:"

	// Student
	RoleStudent = "student:"
)

var (
	AdminRoles   = []string{RoleAdmin, RoleAdminController, RoleAdminHead}
	TeacherRoles = []string{RoleTeacher}
	StudentRoles = []string{RoleStudent}
	AllRoles     = getAllRoles()
)

func getAllRoles() []string {
	all := make([]string, 0, 5)
	all = append(all, AdminRoles...)
	all = append(all, TeacherRoles...)
	all = append(all, StudentRoles...)
	return all
}

// User is the authenticated principal of a request.
// Accounts live in the results system; the routine service only sees its token claims.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username" validate:"required,notblank"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Roles    []string `json:"roles" validate:"required,allroles"`
}

func (u *User) Clean() {
	u.Username = core.CleanString(u.Username, true /* lower */)
	u.Email = core.CleanString(u.Email, true /* lower */)
	u.Roles = core.CleanStrings(u.Roles, true /* lower */)
}

func (u *User) roleStartsWith(prefix string) bool {
	for _, role := range u.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.roleStartsWith(RoleAdmin)
}

func (u *User) IsTeacher() bool {
	return u.roleStartsWith(RoleTeacher)
}

func (u *User) IsStudent() bool {
	return u.roleStartsWith(RoleStudent)
}

// IsStaff reports whether the user may read routines.
func (u *User) IsStaff() bool {
	return u.IsAdmin() || u.IsTeacher()
}
