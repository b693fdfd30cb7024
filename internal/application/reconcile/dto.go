package reconcile

import (
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/reconcile"
	"github.com/google/uuid"
)

// ActionError records one per-item failure. Entity identifies the record the
// action was for, usually an email address.
type ActionError struct {
	Entity string `json:"entity"`
	Error  string `json:"error"`
}

// OnboardResult aggregates one onboarding run: users created in the LMS and
// added to their partner and global groups
type OnboardResult struct {
	Created            int           `json:"created"`
	AlreadyExisted     int           `json:"already_existed"`
	AddedToGroup       int           `json:"added_to_group"`
	AddedToGlobalGroup int           `json:"added_to_global_group"`
	Failed             int           `json:"failed"`
	Errors             []ActionError `json:"errors,omitempty"`
}

// GroupAddResult aggregates a group-membership-only run
type GroupAddResult struct {
	Success       int           `json:"success"`
	AlreadyMember int           `json:"already_member"`
	Failed        int           `json:"failed"`
	Errors        []ActionError `json:"errors,omitempty"`
}

// RemovalResult aggregates a remove-from-group run
type RemovalResult struct {
	Removed int           `json:"removed"`
	Failed  int           `json:"failed"`
	Errors  []ActionError `json:"errors,omitempty"`
}

// DeactivationResult aggregates a user-deactivation run
type DeactivationResult struct {
	Deactivated int           `json:"deactivated"`
	Failed      int           `json:"failed"`
	Errors      []ActionError `json:"errors,omitempty"`
}

// AdoptionResult aggregates an orphan-adoption run: CRM contacts created for
// domain-matched LMS users
type AdoptionResult struct {
	Created        int           `json:"created"`
	AlreadyExisted int           `json:"already_existed"`
	Failed         int           `json:"failed"`
	Errors         []ActionError `json:"errors,omitempty"`
}

// GroupCreateResult aggregates a partner-group-creation run
type GroupCreateResult struct {
	Created        int           `json:"created"`
	AlreadyExisted int           `json:"already_existed"`
	Failed         int           `json:"failed"`
	Errors         []ActionError `json:"errors,omitempty"`
}

// ProgressFunc receives executor progress after each processed item. Entity
// is the record being processed; empty on the final call.
type ProgressFunc func(done, total int, entity string)

// ContactSummary is the console view of a CRM contact
type ContactSummary struct {
	CRMID       string `json:"crm_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	AccountName string `json:"account_name"`
}

// UserSummary is the console view of an LMS user
type UserSummary struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// MembershipGapSummary is a user missing from its contact's partner group
type MembershipGapSummary struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	GroupID     string `json:"group_id"`
	GroupName   string `json:"group_name"`
	AccountName string `json:"account_name"`
}

// OrphanSummary is a domain-matched but unlinked LMS user
type OrphanSummary struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Domain      string    `json:"domain"`
	PartnerID   uuid.UUID `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
}

// OffboardSummary is a global-group member whose backing record went away
type OffboardSummary struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// AnalysisResponse is the full classification for one analysis run
type AnalysisResponse struct {
	MissingFromLms          []ContactSummary       `json:"missing_from_lms"`
	MissingFromPartnerGroup []MembershipGapSummary `json:"missing_from_partner_group"`
	MissingFromGlobalGroup  []UserSummary          `json:"missing_from_global_group"`
	Orphans                 []OrphanSummary        `json:"orphans"`
	UsersToOffboard         []OffboardSummary      `json:"users_to_offboard"`
	Warnings                []reconcile.Warning    `json:"warnings,omitempty"`
	HasGlobalGroup          bool                   `json:"has_global_group"`
	UserCount               int                    `json:"user_count"`
	GroupCount              int                    `json:"group_count"`
	ContactCount            int                    `json:"contact_count"`
	SnapshotAt              time.Time              `json:"snapshot_at"`
}

func toAnalysisResponse(run *Run) *AnalysisResponse {
	cls := run.Classification
	resp := &AnalysisResponse{
		MissingFromLms:          make([]ContactSummary, 0, len(cls.MissingFromLms)),
		MissingFromPartnerGroup: make([]MembershipGapSummary, 0, len(cls.MissingFromPartnerGroup)),
		MissingFromGlobalGroup:  make([]UserSummary, 0, len(cls.MissingFromGlobalGroup)),
		Orphans:                 make([]OrphanSummary, 0, len(cls.Orphans)),
		UsersToOffboard:         make([]OffboardSummary, 0, len(cls.UsersToOffboard)),
		Warnings:                run.Indices.Warnings,
		HasGlobalGroup:          run.Indices.GlobalGroup != nil,
		UserCount:               len(run.Snapshot.Users),
		GroupCount:              len(run.Snapshot.Groups),
		ContactCount:            len(run.Contacts),
		SnapshotAt:              run.Snapshot.FetchedAt,
	}

	for _, c := range cls.MissingFromLms {
		resp.MissingFromLms = append(resp.MissingFromLms, ContactSummary{
			CRMID:       c.CRMID,
			Email:       c.Email,
			Name:        c.FullName(),
			AccountName: c.AccountName,
		})
	}
	for _, gap := range cls.MissingFromPartnerGroup {
		resp.MissingFromPartnerGroup = append(resp.MissingFromPartnerGroup, MembershipGapSummary{
			UserID:      gap.User.ID,
			Email:       gap.User.Email,
			GroupID:     gap.Group.ID,
			GroupName:   gap.Group.Name,
			AccountName: gap.Contact.AccountName,
		})
	}
	for _, u := range cls.MissingFromGlobalGroup {
		resp.MissingFromGlobalGroup = append(resp.MissingFromGlobalGroup, UserSummary{
			UserID: u.ID,
			Email:  u.Email,
		})
	}
	for _, o := range cls.Orphans {
		resp.Orphans = append(resp.Orphans, OrphanSummary{
			UserID:      o.User.ID,
			Email:       o.User.Email,
			Domain:      o.Domain,
			PartnerID:   o.PartnerID,
			PartnerName: o.PartnerName,
		})
	}
	for _, cand := range cls.UsersToOffboard {
		resp.UsersToOffboard = append(resp.UsersToOffboard, OffboardSummary{
			UserID: cand.User.ID,
			Email:  cand.User.Email,
			Reason: cand.Reason,
		})
	}

	return resp
}
