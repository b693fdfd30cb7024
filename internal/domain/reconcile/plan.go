package reconcile

import (
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
)

// ActionKind enumerates the LMS mutations the executor knows how to apply
type ActionKind string

const (
	ActionCreatePerson    ActionKind = "create_person"
	ActionCreateGroup     ActionKind = "create_group"
	ActionAddToGroup      ActionKind = "add_to_group"
	ActionRemoveFromGroup ActionKind = "remove_from_group"
	ActionDeactivateUser  ActionKind = "deactivate_user"
	ActionCreateContact   ActionKind = "create_contact"
)

// Action is one planned mutation. Actions are value objects: planning never
// touches the LMS, and the same classification always plans the same actions.
type Action struct {
	Kind    ActionKind
	UserID  string
	Email   string
	GroupID string

	FirstName string
	LastName  string
	GroupName string

	Contact *partner.Contact
}

// Key returns the action's idempotency key. Two actions with the same key are
// the same mutation; executors and retry layers may use it for dedup.
func (a Action) Key() string {
	parts := []string{string(a.Kind)}
	if a.UserID != "" {
		parts = append(parts, a.UserID)
	} else if a.Email != "" {
		parts = append(parts, strings.ToLower(a.Email))
	}
	if a.GroupID != "" {
		parts = append(parts, a.GroupID)
	}
	return strings.Join(parts, ":")
}

// UserPlan is the ordered per-user action sequence for onboarding one missing
// contact: create the person, add to the partner group, add to the global
// group. Later steps depend on the created user id, so Create always runs
// first and the group adds are resolved against its result.
type UserPlan struct {
	Contact         partner.Contact
	Create          Action
	PartnerGroupAdd *Action
	GlobalGroupAdd  *Action
}

// Actions returns the plan's steps in execution order, with the user id
// filled in on the group adds
func (p *UserPlan) Actions(userID string) []Action {
	out := []Action{p.Create}
	if p.PartnerGroupAdd != nil {
		a := *p.PartnerGroupAdd
		a.UserID = userID
		out = append(out, a)
	}
	if p.GlobalGroupAdd != nil {
		a := *p.GlobalGroupAdd
		a.UserID = userID
		out = append(out, a)
	}
	return out
}

// PlanOnboarding plans the per-user action sequences for every contact absent
// from the LMS. Every required partner group must already exist; a missing
// one is a blocking precondition and planning fails without producing a
// partial plan, since executing would silently skip group assignment for
// every affected user. The global-group step is planned only when a global
// group exists.
func PlanOnboarding(contacts []partner.Contact, idx *Indices) ([]UserPlan, error) {
	plans := make([]UserPlan, 0, len(contacts))
	for _, c := range contacts {
		g := idx.GroupForAccount(c.AccountName)
		if g == nil {
			return nil, shared.ErrNoPartnerGroup
		}
		plan := UserPlan{
			Contact: c,
			Create: Action{
				Kind:      ActionCreatePerson,
				Email:     c.Email,
				FirstName: c.FirstName,
				LastName:  c.LastName,
			},
			PartnerGroupAdd: &Action{
				Kind:      ActionAddToGroup,
				GroupID:   g.ID,
				GroupName: g.Name,
			},
		}
		if idx.GlobalGroup != nil {
			plan.GlobalGroupAdd = &Action{
				Kind:      ActionAddToGroup,
				GroupID:   idx.GlobalGroup.ID,
				GroupName: idx.GlobalGroup.Name,
			}
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// PlanGroupAdds plans one membership action per gap
func PlanGroupAdds(gaps []MembershipGap) []Action {
	out := make([]Action, 0, len(gaps))
	for _, gap := range gaps {
		out = append(out, Action{
			Kind:      ActionAddToGroup,
			UserID:    gap.User.ID,
			Email:     gap.User.Email,
			GroupID:   gap.Group.ID,
			GroupName: gap.Group.Name,
		})
	}
	return out
}

// PlanGlobalGroupAdds plans adding each user to the global group. Fails when
// no global group exists.
func PlanGlobalGroupAdds(users []*lms.User, idx *Indices) ([]Action, error) {
	if idx.GlobalGroup == nil {
		return nil, shared.ErrNoGlobalGroup
	}
	out := make([]Action, 0, len(users))
	for _, u := range users {
		out = append(out, Action{
			Kind:      ActionAddToGroup,
			UserID:    u.ID,
			Email:     u.Email,
			GroupID:   idx.GlobalGroup.ID,
			GroupName: idx.GlobalGroup.Name,
		})
	}
	return out, nil
}

// PlanRemovals plans removing each offboard candidate from the global group
func PlanRemovals(candidates []OffboardCandidate, idx *Indices) ([]Action, error) {
	if idx.GlobalGroup == nil {
		return nil, shared.ErrNoGlobalGroup
	}
	out := make([]Action, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, Action{
			Kind:      ActionRemoveFromGroup,
			UserID:    cand.User.ID,
			Email:     cand.User.Email,
			GroupID:   idx.GlobalGroup.ID,
			GroupName: idx.GlobalGroup.Name,
		})
	}
	return out, nil
}

// PlanDeactivations plans deactivating each offboard candidate's LMS account
func PlanDeactivations(candidates []OffboardCandidate) []Action {
	out := make([]Action, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, Action{
			Kind:   ActionDeactivateUser,
			UserID: cand.User.ID,
			Email:  cand.User.Email,
		})
	}
	return out
}

// PlanAdoptions plans creating a CRM contact for each orphan, turning a
// domain inference into an explicit contact match on the next run
func PlanAdoptions(orphans []OrphanRecord) []Action {
	out := make([]Action, 0, len(orphans))
	for _, o := range orphans {
		out = append(out, Action{
			Kind:      ActionCreateContact,
			UserID:    o.User.ID,
			Email:     o.User.Email,
			FirstName: o.User.FirstName,
			LastName:  o.User.LastName,
			GroupName: o.PartnerName,
		})
	}
	return out
}

// PlanGroupCreation plans the partner group for an account when none exists
// yet, returning nil when the group is already present
func PlanGroupCreation(accountName string, idx *Indices) *Action {
	if idx.GroupForAccount(accountName) != nil {
		return nil
	}
	return &Action{
		Kind:      ActionCreateGroup,
		GroupName: GroupPrefix + accountName,
	}
}
