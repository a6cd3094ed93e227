package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/authz"
)

// La tabla completa rol → permisos, tal como la consume el panel.
func TestResolve_TablaCompleta(t *testing.T) {
	cases := []struct {
		role authz.Role
		want authz.PermissionSet
	}{
		{authz.RoleAdmin, authz.PermissionSet{
			AccessAdminPanel: true,
			ManageUsers:      true,
			DeleteUsers:      true,
			ManageArticles:   true,
			AdjustStock:      true,
			DeleteArticles:   true,
		}},
		{authz.RoleManager, authz.PermissionSet{
			AccessAdminPanel: true,
			ManageUsers:      true,
			DeleteUsers:      false,
			ManageArticles:   true,
			AdjustStock:      true,
			DeleteArticles:   false,
		}},
		{authz.RoleEmployee, authz.PermissionSet{
			AccessAdminPanel: false,
			ManageUsers:      false,
			DeleteUsers:      false,
			ManageArticles:   false,
			AdjustStock:      true,
			DeleteArticles:   false,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, authz.Resolve(tc.role))
		})
	}
}

// Roles fuera del enum (incluido vacío) resuelven como employee, nunca error
// y nunca admin (Escenario D).
func TestResolve_RolDesconocidoCaeAEmployee(t *testing.T) {
	employee := authz.Resolve(authz.RoleEmployee)
	for _, s := range []string{"", "unknown", "superuser", "ADMIN", "Admin ", "root"} {
		got := authz.ResolveString(s)
		assert.Equal(t, employee, got, "rol %q debe degradar a employee", s)
		assert.True(t, got.AdjustStock)
		assert.False(t, got.AccessAdminPanel)
		assert.False(t, got.DeleteUsers)
	}
}

// Los alias derivados duplican siempre su bit base, para todos los roles.
func TestPermissionSet_Alias(t *testing.T) {
	for _, r := range []authz.Role{authz.RoleAdmin, authz.RoleManager, authz.RoleEmployee} {
		p := authz.Resolve(r)
		assert.Equal(t, p.AdjustStock, p.CanAddStock(), "add_stock == adjust_stock (%s)", r)
		assert.Equal(t, p.AdjustStock, p.CanRemoveStock(), "remove_stock == adjust_stock (%s)", r)
		assert.Equal(t, p.ManageArticles, p.CanListArticles(), "list == manage (%s)", r)
		assert.Equal(t, p.ManageArticles, p.CanEditArticles(), "edit == manage (%s)", r)
	}
}

// RoleFromString solo acepta los tres valores exactos del enum.
func TestRoleFromString(t *testing.T) {
	assert.Equal(t, authz.RoleAdmin, authz.RoleFromString("admin"))
	assert.Equal(t, authz.RoleManager, authz.RoleFromString("manager"))
	assert.Equal(t, authz.RoleEmployee, authz.RoleFromString("employee"))
	assert.Equal(t, authz.RoleEmployee, authz.RoleFromString("manager "))
	assert.True(t, authz.RoleFromString("whatever").Valid())
}
