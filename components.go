package pm

import "github.com/goliatone/go-pm/pkg/activity"

// modifyUserStateComponents returns userID's stored state, materializing the
// requested component sets with a capacity hint of one. The set being
// inserted into is the only one materialized; a nil opposite set is treated
// as empty for removals.
func (p *PackageSetting) modifyUserStateComponents(userID int, disabled, enabled bool) *UserState {
	state := p.modifyUserState(userID)
	if disabled && state.DisabledComponents == nil {
		state.DisabledComponents = make(ComponentSet, 1)
	}
	if enabled && state.EnabledComponents == nil {
		state.EnabledComponents = make(ComponentSet, 1)
	}
	return state
}

// EnabledComponents returns userID's enabled-component set by reference;
// nil when never materialized.
func (p *PackageSetting) EnabledComponents(userID int) ComponentSet {
	return p.ReadUserState(userID).EnabledComponents
}

// DisabledComponents returns userID's disabled-component set by reference;
// nil when never materialized.
func (p *PackageSetting) DisabledComponents(userID int) ComponentSet {
	return p.ReadUserState(userID).DisabledComponents
}

// SetEnabledComponents stores components by reference; the caller must pass
// an owned set if it intends isolation.
func (p *PackageSetting) SetEnabledComponents(components ComponentSet, userID int) {
	p.modifyUserState(userID).EnabledComponents = components
}

// SetDisabledComponents stores components by reference; see
// SetEnabledComponents.
func (p *PackageSetting) SetDisabledComponents(components ComponentSet, userID int) {
	p.modifyUserState(userID).DisabledComponents = components
}

// SetEnabledComponentsCopy stores a defensive copy of components; nil clears
// the set back to absent.
func (p *PackageSetting) SetEnabledComponentsCopy(components ComponentSet, userID int) {
	p.modifyUserState(userID).EnabledComponents = components.Clone()
}

// SetDisabledComponentsCopy stores a defensive copy of components; nil
// clears the set back to absent.
func (p *PackageSetting) SetDisabledComponentsCopy(components ComponentSet, userID int) {
	p.modifyUserState(userID).DisabledComponents = components.Clone()
}

// AddEnabledComponent inserts component into userID's enabled set.
func (p *PackageSetting) AddEnabledComponent(component string, userID int) {
	p.modifyUserStateComponents(userID, false, true).EnabledComponents.Add(component)
}

// AddDisabledComponent inserts component into userID's disabled set.
func (p *PackageSetting) AddDisabledComponent(component string, userID int) {
	p.modifyUserStateComponents(userID, true, false).DisabledComponents.Add(component)
}

// EnableComponent moves component to the enabled set, removing any disable
// override. Returns whether membership changed.
func (p *PackageSetting) EnableComponent(component string, userID int) bool {
	state := p.modifyUserStateComponents(userID, false, true)
	changed := state.DisabledComponents.Remove(component)
	changed = state.EnabledComponents.Add(component) || changed
	if changed {
		p.emit(activity.BuildComponentEnabledEvent(activity.StateEventInput{
			Package:      p.name,
			Component:    component,
			DeviceUserID: userID,
		}))
	}
	return changed
}

// DisableComponent moves component to the disabled set, removing any enable
// override. Returns whether membership changed.
func (p *PackageSetting) DisableComponent(component string, userID int) bool {
	state := p.modifyUserStateComponents(userID, true, false)
	changed := state.EnabledComponents.Remove(component)
	changed = state.DisabledComponents.Add(component) || changed
	if changed {
		p.emit(activity.BuildComponentDisabledEvent(activity.StateEventInput{
			Package:      p.name,
			Component:    component,
			DeviceUserID: userID,
		}))
	}
	return changed
}

// RestoreComponent removes component from both sets, returning it to the
// default state. Returns whether membership changed.
func (p *PackageSetting) RestoreComponent(component string, userID int) bool {
	state := p.modifyUserStateComponents(userID, true, true)
	changed := state.DisabledComponents.Remove(component)
	changed = state.EnabledComponents.Remove(component) || changed
	return changed
}

// ComponentEnabledState resolves component's effective override for userID.
// Enabled-set membership wins over disabled-set membership; absence from
// both resolves to the default state.
func (p *PackageSetting) ComponentEnabledState(component string, userID int) EnabledState {
	state := p.ReadUserState(userID)
	switch {
	case state.EnabledComponents.Contains(component):
		return EnabledStateEnabled
	case state.DisabledComponents.Contains(component):
		return EnabledStateDisabled
	default:
		return EnabledStateDefault
	}
}
