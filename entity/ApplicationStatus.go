package entity

import (
	"errors"
	"fmt"
)

// Status is the lifecycle field of an Application.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusApproved   Status = "Approved"
	StatusRejected   Status = "Rejected"
)

// Statuses lists every value that may be persisted, in lifecycle order.
var Statuses = []Status{StatusPending, StatusProcessing, StatusApproved, StatusRejected}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// ErrInvalidStatus is returned whenever a value outside Statuses would be stored.
var ErrInvalidStatus = errors.New("invalid status")

// ParseStatus accepts exactly the persisted spelling.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}
