package pm

import "sort"

// ComponentSet is a set of component class names. The engine materializes
// sets lazily; a nil set reads as empty.
type ComponentSet map[string]struct{}

// NewComponentSet builds a set from names.
func NewComponentSet(names ...string) ComponentSet {
	set := make(ComponentSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports membership. Safe on a nil set.
func (s ComponentSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name, reporting whether the set changed.
func (s ComponentSet) Add(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}

// Remove deletes name, reporting whether the set changed. Safe on a nil set.
func (s ComponentSet) Remove(name string) bool {
	if _, ok := s[name]; !ok {
		return false
	}
	delete(s, name)
	return true
}

// Clone returns a detached copy, preserving nil-ness.
func (s ComponentSet) Clone() ComponentSet {
	if s == nil {
		return nil
	}
	out := make(ComponentSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Sorted returns the members in ascending order for deterministic output.
func (s ComponentSet) Sorted() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SuspendDialogInfo describes the dialog shown when a suspended package is
// launched. Produced by the policy component that imposes the suspension.
type SuspendDialogInfo struct {
	Title               string
	Message             string
	NeutralButtonText   string
	IconResID           int
	NeutralButtonAction int
}

// SuspendParams bundles one suspending actor's hold: the dialog to show plus
// opaque extras surfaced to the app and to launchers.
type SuspendParams struct {
	DialogInfo     *SuspendDialogInfo
	AppExtras      Bundle
	LauncherExtras Bundle
}

// NewSuspendParamsOrNil returns a params value, or nil when every part is
// empty, so callers can store the absence of parameters compactly.
func NewSuspendParamsOrNil(dialogInfo *SuspendDialogInfo, appExtras, launcherExtras Bundle) *SuspendParams {
	if dialogInfo == nil && appExtras.IsEmpty() && launcherExtras.IsEmpty() {
		return nil
	}
	return &SuspendParams{
		DialogInfo:     dialogInfo,
		AppExtras:      appExtras,
		LauncherExtras: launcherExtras,
	}
}

// LabelIconOverride is a per-component non-localized label and icon override.
// Nil fields leave the corresponding attribute untouched.
type LabelIconOverride struct {
	Label *string
	Icon  *int
}

// UserState is the per-(package, user) state record. Fields are exported so
// persistence and diagnostic collaborators can traverse them; all engine
// invariants are maintained through PackageSetting's accessors.
type UserState struct {
	CEDataInode int64

	Installed        bool
	Stopped          bool
	NotLaunched      bool
	Hidden           bool
	InstantApp       bool
	VirtualPreload   bool
	DistractionFlags int

	// Suspended is derived: true iff SuspendParams is non-empty. It is only
	// written by the suspension mutators and by the bulk restore path.
	Suspended     bool
	SuspendParams map[string]*SuspendParams

	Enabled              EnabledState
	LastDisableAppCaller string

	InstallReason   InstallReason
	UninstallReason UninstallReason

	// EnabledComponents and DisabledComponents stay nil until first written;
	// once materialized they are emptied, never nilled, for the lifetime of
	// this record.
	EnabledComponents  ComponentSet
	DisabledComponents ComponentSet

	DomainVerificationStatus VerificationStatus
	AppLinkGeneration        int

	HarmfulAppWarning string

	// CategoryHint mirrors the package-level hint; it is stamped on every
	// read-through and is not independently persisted per user.
	CategoryHint int

	OverlayPaths              []string
	SharedLibraryOverlayPaths map[string][]string

	// ComponentLabelIcons holds non-localized label/icon overrides keyed by
	// component class name. Nil until the first override.
	ComponentLabelIcons map[string]LabelIconOverride
}

// defaultUserState is the canonical state for users the table has never
// stored: all-false booleans, default enabled state, empty optional fields.
func defaultUserState() UserState {
	return UserState{
		Enabled:                  EnabledStateDefault,
		InstallReason:            InstallReasonUnknown,
		UninstallReason:          UninstallReasonUnknown,
		DomainVerificationStatus: VerificationStatusUndefined,
		CategoryHint:             CategoryUndefined,
	}
}

// SuspendingActors returns the actors currently holding a suspension on this
// state, in ascending order.
func (u *UserState) SuspendingActors() []string {
	if len(u.SuspendParams) == 0 {
		return nil
	}
	actors := make([]string, 0, len(u.SuspendParams))
	for actor := range u.SuspendParams {
		actors = append(actors, actor)
	}
	sort.Strings(actors)
	return actors
}

// overrideLabelAndIcon records a label/icon override for component, returning
// whether anything changed.
func (u *UserState) overrideLabelAndIcon(component string, label *string, icon *int) bool {
	existing, ok := u.ComponentLabelIcons[component]
	if ok && equalStringPtr(existing.Label, label) && equalIntPtr(existing.Icon, icon) {
		return false
	}
	if u.ComponentLabelIcons == nil {
		u.ComponentLabelIcons = make(map[string]LabelIconOverride, 1)
	}
	u.ComponentLabelIcons[component] = LabelIconOverride{Label: label, Icon: icon}
	return true
}

// resetOverrideComponentLabelIcon clears all overrides, reporting whether any
// were present.
func (u *UserState) resetOverrideComponentLabelIcon() bool {
	if len(u.ComponentLabelIcons) == 0 {
		return false
	}
	u.ComponentLabelIcons = nil
	return true
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
