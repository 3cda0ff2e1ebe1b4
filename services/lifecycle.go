// services/lifecycle.go
package services

import (
	"fmt"

	"github.com/amrit073/NEPGA/entity"
)

// Lifecycle guards the status field. In permissive mode any valid status may
// replace any other; in strict mode only edges in the table are allowed.
type Lifecycle struct {
	strict      bool
	transitions map[entity.Status][]entity.Status
}

func NewLifecycle(strict bool) *Lifecycle {
	return &Lifecycle{
		strict: strict,
		transitions: map[entity.Status][]entity.Status{
			entity.StatusPending:    {entity.StatusProcessing, entity.StatusRejected},
			entity.StatusProcessing: {entity.StatusApproved, entity.StatusRejected, entity.StatusPending},
			entity.StatusApproved:   {},
			entity.StatusRejected:   {},
		},
	}
}

func (l *Lifecycle) Strict() bool { return l.strict }

// ValidateStatus parses candidate against the fixed status set.
func (l *Lifecycle) ValidateStatus(candidate string) (entity.Status, error) {
	return entity.ParseStatus(candidate)
}

// CanTransition reports whether from -> to is allowed. Writing the current
// status again is always allowed.
func (l *Lifecycle) CanTransition(from, to entity.Status) bool {
	if !to.Valid() {
		return false
	}
	if !l.strict || from == to {
		return true
	}
	for _, next := range l.transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Apply validates candidate and overwrites app.Status.
func (l *Lifecycle) Apply(app *entity.Application, candidate string) error {
	to, err := l.ValidateStatus(candidate)
	if err != nil {
		return err
	}
	if !l.CanTransition(app.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, app.Status, to)
	}
	app.Status = to
	return nil
}
