package activity

import "time"

// StateEventInput describes the common fields for package state events.
type StateEventInput struct {
	Package      string
	Component    string
	Actor        string
	AccountID    string
	Channel      string
	DeviceUserID int
	Metadata     map[string]any
	OccurredAt   time.Time
}

// BuildSuspendedEvent constructs an event recording a suspension hold being
// placed or refreshed.
func BuildSuspendedEvent(input StateEventInput) Event {
	return buildStateEvent("package.suspended", input)
}

// BuildUnsuspendedEvent constructs an event recording the last suspension
// hold being lifted.
func BuildUnsuspendedEvent(input StateEventInput) Event {
	return buildStateEvent("package.unsuspended", input)
}

// BuildComponentEnabledEvent constructs an event recording a component
// enable override.
func BuildComponentEnabledEvent(input StateEventInput) Event {
	return buildStateEvent("package.component.enabled", input)
}

// BuildComponentDisabledEvent constructs an event recording a component
// disable override.
func BuildComponentDisabledEvent(input StateEventInput) Event {
	return buildStateEvent("package.component.disabled", input)
}

// BuildEnabledStateChangedEvent constructs an event recording a change to
// the package-level enabled override.
func BuildEnabledStateChangedEvent(input StateEventInput) Event {
	return buildStateEvent("package.enabled_state.changed", input)
}

func buildStateEvent(verb string, input StateEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Component != "" {
		if metadata == nil {
			metadata = map[string]any{}
		}
		metadata["component"] = input.Component
	}
	return Event{
		Verb:         verb,
		Package:      input.Package,
		Component:    input.Component,
		Actor:        input.Actor,
		AccountID:    input.AccountID,
		DeviceUserID: input.DeviceUserID,
		Channel:      input.Channel,
		Metadata:     metadata,
		OccurredAt:   input.OccurredAt,
	}
}
