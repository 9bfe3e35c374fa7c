package pm

import "github.com/goliatone/go-pm/pkg/activity"

// Suspension is a multi-writer hold: several system actors can independently
// suspend the same package for a user, and removing one actor's hold must
// not lift another's. The Suspended flag is always derived from the params
// map by refreshSuspended, never written directly by these mutators.

// AddOrUpdateSuspension upserts actor's hold on the package for userID.
// Dialog info and extras may all be empty, in which case the hold is stored
// with nil params.
func (p *PackageSetting) AddOrUpdateSuspension(actor string, dialogInfo *SuspendDialogInfo, appExtras, launcherExtras Bundle, userID int) {
	state := p.modifyUserState(userID)
	if state.SuspendParams == nil {
		state.SuspendParams = make(map[string]*SuspendParams, 1)
	}
	state.SuspendParams[actor] = NewSuspendParamsOrNil(dialogInfo, appExtras, launcherExtras)
	state.Suspended = true
	p.emit(activity.BuildSuspendedEvent(activity.StateEventInput{
		Package:      p.name,
		Actor:        actor,
		DeviceUserID: userID,
	}))
}

// RemoveSuspension lifts actor's hold for userID. Silent no-op when actor
// holds none. When the last hold is removed the params map collapses back
// to nil.
func (p *PackageSetting) RemoveSuspension(actor string, userID int) {
	state := p.modifyUserState(userID)
	if state.SuspendParams != nil {
		delete(state.SuspendParams, actor)
	}
	p.refreshSuspended(state, userID)
}

// RemoveSuspensionsWhere lifts every hold whose actor matches pred in one
// pass. Safe when no hold exists.
func (p *PackageSetting) RemoveSuspensionsWhere(pred func(actor string) bool, userID int) {
	state := p.modifyUserState(userID)
	for actor := range state.SuspendParams {
		if pred(actor) {
			delete(state.SuspendParams, actor)
		}
	}
	p.refreshSuspended(state, userID)
}

// refreshSuspended is the single place the derived flag is recomputed;
// every suspension mutator ends here so the invariant
// suspended == (len(suspendParams) > 0) holds under future extension.
func (p *PackageSetting) refreshSuspended(state *UserState, userID int) {
	if len(state.SuspendParams) == 0 {
		state.SuspendParams = nil
	}
	wasSuspended := state.Suspended
	state.Suspended = state.SuspendParams != nil
	if wasSuspended && !state.Suspended {
		p.emit(activity.BuildUnsuspendedEvent(activity.StateEventInput{
			Package:      p.name,
			DeviceUserID: userID,
		}))
	}
}

// Suspended reports whether any actor currently suspends the package for
// userID.
func (p *PackageSetting) Suspended(userID int) bool {
	return p.ReadUserState(userID).Suspended
}

// IsSuspendedBy reports whether actor specifically holds a suspension for
// userID. False, not an error, when the user has no state at all.
func (p *PackageSetting) IsSuspendedBy(actor string, userID int) bool {
	state := p.ReadUserState(userID)
	if state.SuspendParams == nil {
		return false
	}
	_, ok := state.SuspendParams[actor]
	return ok
}

// SuspendParamsFor returns the params actor attached to its hold, or nil.
func (p *PackageSetting) SuspendParamsFor(actor string, userID int) *SuspendParams {
	state := p.ReadUserState(userID)
	if state.SuspendParams == nil {
		return nil
	}
	return state.SuspendParams[actor]
}

// SuspendingActors returns the actors holding suspensions for userID in
// ascending order.
func (p *PackageSetting) SuspendingActors(userID int) []string {
	state := p.ReadUserState(userID)
	return state.SuspendingActors()
}
