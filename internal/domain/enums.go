package domain

import (
	"fmt"
	"strings"
)

type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusReview     ProjectStatus = "Review"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

// ProjectStatuses lists every status in workflow order.
var ProjectStatuses = []ProjectStatus{
	StatusPlanning, StatusInProgress, StatusReview, StatusCompleted, StatusOnHold,
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentOverdue}

// ProjectKind is the tag of the project variant. Each kind carries its own
// rules for budget and deadline (see kindRules).
type ProjectKind string

const (
	KindSingle  ProjectKind = "single"
	KindComplex ProjectKind = "complex"
)

// normalizeEnum lowercases s and folds '-' and '_' into spaces so that
// "in-progress", "IN_PROGRESS" and "In Progress" compare equal.
func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ParseProjectStatus maps user input onto a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	n := normalizeEnum(s)
	for _, st := range ProjectStatuses {
		if normalizeEnum(string(st)) == n {
			return st, nil
		}
	}
	// "inprogress" / "onhold" without separators.
	switch strings.ReplaceAll(n, " ", "") {
	case "inprogress":
		return StatusInProgress, nil
	case "onhold":
		return StatusOnHold, nil
	}
	return "", fmt.Errorf("%w: project status %q", ErrInvalidStatus, s)
}

// ParsePaymentStatus maps user input onto a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	n := normalizeEnum(s)
	for _, st := range PaymentStatuses {
		if normalizeEnum(string(st)) == n {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: payment status %q", ErrInvalidStatus, s)
}

// ParseProjectKind maps user input onto a ProjectKind. Empty input means single.
func ParseProjectKind(s string) (ProjectKind, error) {
	switch normalizeEnum(s) {
	case "", "single":
		return KindSingle, nil
	case "complex":
		return KindComplex, nil
	}
	return "", fmt.Errorf("%w: project kind %q", ErrInvalidStatus, s)
}

func (s ProjectStatus) Valid() bool {
	for _, st := range ProjectStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	for _, st := range PaymentStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (k ProjectKind) Valid() bool {
	return k == KindSingle || k == KindComplex
}
