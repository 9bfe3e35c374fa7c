package pm

import "sort"

// modifyUserState returns the stored state for userID, inserting a freshly
// defaulted record on first use. Every per-user mutator funnels through
// here; reads never do.
func (p *PackageSetting) modifyUserState(userID int) *UserState {
	state, ok := p.userStates[userID]
	if !ok {
		fresh := defaultUserState()
		state = &fresh
		p.userStates[userID] = state
	}
	return state
}

// ReadUserState returns a view of userID's state: the stored record when one
// exists, the canonical default otherwise. The view is a value copy with the
// package-level category hint stamped in, so reads are side-effect-free and
// never create table entries. Maps and slices inside the view alias the
// stored record.
func (p *PackageSetting) ReadUserState(userID int) UserState {
	state, ok := p.userStates[userID]
	if !ok {
		return defaultUserState()
	}
	view := *state
	view.CategoryHint = p.categoryHint
	return view
}

// HasUserState reports whether the table stores a record for userID.
func (p *PackageSetting) HasUserState(userID int) bool {
	_, ok := p.userStates[userID]
	return ok
}

// UserStateCount returns the number of stored per-user records.
func (p *PackageSetting) UserStateCount() int {
	return len(p.userStates)
}

// RemoveUser deletes userID's record when a user is removed from the device.
// Silent no-op when absent. Uninstalling for one user does not remove the
// record; it only clears Installed (see SetInstalled).
func (p *PackageSetting) RemoveUser(userID int) {
	delete(p.userStates, userID)
}

// UserIDs returns every user id with a stored record, ascending.
func (p *PackageSetting) UserIDs() []int {
	return p.userIDsWhere(nil)
}

// UserIDsWhere returns the stored user ids whose state matches pred,
// ascending for deterministic output.
func (p *PackageSetting) UserIDsWhere(pred func(userID int, state *UserState) bool) []int {
	return p.userIDsWhere(pred)
}

func (p *PackageSetting) userIDsWhere(pred func(int, *UserState) bool) []int {
	if len(p.userStates) == 0 {
		return nil
	}
	out := make([]int, 0, len(p.userStates))
	for userID, state := range p.userStates {
		if pred == nil || pred(userID, state) {
			out = append(out, userID)
		}
	}
	if len(out) == 0 {
		return nil
	}
	sort.Ints(out)
	return out
}

// IsAnyInstalled reports whether the package is installed for any of users.
func (p *PackageSetting) IsAnyInstalled(users []int) bool {
	for _, userID := range users {
		if p.ReadUserState(userID).Installed {
			return true
		}
	}
	return false
}

// QueryInstalledUsers filters users by their installed flag, preserving the
// caller's order. Users with no stored record read through the default
// (not installed).
func (p *PackageSetting) QueryInstalledUsers(users []int, installed bool) []int {
	var out []int
	for _, userID := range users {
		if p.ReadUserState(userID).Installed == installed {
			out = append(out, userID)
		}
	}
	return out
}

// NotInstalledUserIDs returns the subset of users the package is not
// installed for, preserving the caller's order.
func (p *PackageSetting) NotInstalledUserIDs(users []int) []int {
	return p.QueryInstalledUsers(users, false)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
