package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// Objects and actions guarded by the policy.
const (
	ObjectComplaint = "complaint"

	ActionListAll      = "list_all"
	ActionUpdateStatus = "update_status"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// defaultPolicies are the admin-only permissions. Roles without a rule are denied.
var defaultPolicies = [][]string{
	{"admin", ObjectComplaint, ActionListAll},
	{"admin", ObjectComplaint, ActionUpdateStatus},
}

// Enforcer answers role based permission checks. Policies live in the
// casbin_rule table of the application database.
type Enforcer struct {
	enforcer *casbin.Enforcer
}

// NewEnforcer loads the policy from db and inserts the default admin rules
// that are missing.
func NewEnforcer(db *gorm.DB) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("casbin model: %w", err)
	}

	e, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}

	for _, p := range defaultPolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("add policy %v: %w", p, err)
		}
	}

	return &Enforcer{enforcer: e}, nil
}

// Allowed reports whether role may perform act on obj.
func (e *Enforcer) Allowed(role, obj, act string) (bool, error) {
	ok, err := e.enforcer.Enforce(role, obj, act)
	if err != nil {
		return false, fmt.Errorf("enforce %s %s %s: %w", role, obj, act, err)
	}
	return ok, nil
}
