package authz

// PermissionSet es el conjunto fijo de capacidades que otorga un rol.
// Siempre se deriva del rol vía Resolve; nunca se persiste por separado.
type PermissionSet struct {
	AccessAdminPanel bool `json:"access_admin_panel"`
	ManageUsers      bool `json:"manage_users"`
	DeleteUsers      bool `json:"delete_users"`
	ManageArticles   bool `json:"manage_articles"`
	AdjustStock      bool `json:"adjust_stock"`
	DeleteArticles   bool `json:"delete_articles"`
}

// Tabla estática rol → permisos. Extender el enum de roles implica añadir
// una fila aquí.
var permissionTable = map[Role]PermissionSet{
	RoleAdmin: {
		AccessAdminPanel: true,
		ManageUsers:      true,
		DeleteUsers:      true,
		ManageArticles:   true,
		AdjustStock:      true,
		DeleteArticles:   true,
	},
	RoleManager: {
		AccessAdminPanel: true,
		ManageUsers:      true,
		DeleteUsers:      false,
		ManageArticles:   true,
		AdjustStock:      true,
		DeleteArticles:   false,
	},
	RoleEmployee: {
		AccessAdminPanel: false,
		ManageUsers:      false,
		DeleteUsers:      false,
		ManageArticles:   false,
		AdjustStock:      true,
		DeleteArticles:   false,
	},
}

// Resolve devuelve el PermissionSet del rol. Es una función pura sobre la
// tabla estática; roles fuera del enum resuelven como employee. El resolver
// no aplica nada por sí mismo: los callers son responsables del gating.
func Resolve(r Role) PermissionSet {
	if ps, ok := permissionTable[r]; ok {
		return ps
	}
	return permissionTable[RoleEmployee]
}

// ResolveString resuelve directamente desde el string de persistencia.
func ResolveString(role string) PermissionSet {
	return Resolve(RoleFromString(role))
}

// Alias derivados para conveniencia de los call sites. No son bits
// independientes: duplican adjust_stock y manage_articles.

// CanAddStock equivale a AdjustStock.
func (p PermissionSet) CanAddStock() bool { return p.AdjustStock }

// CanRemoveStock equivale a AdjustStock.
func (p PermissionSet) CanRemoveStock() bool { return p.AdjustStock }

// CanListArticles equivale a ManageArticles.
func (p PermissionSet) CanListArticles() bool { return p.ManageArticles }

// CanEditArticles equivale a ManageArticles.
func (p PermissionSet) CanEditArticles() bool { return p.ManageArticles }
