package pm

import "github.com/goliatone/go-pm/pkg/activity"

// SetEnabled applies a package-level enable override for userID, recording
// the caller responsible for the change.
func (p *PackageSetting) SetEnabled(state EnabledState, userID int, callingPackage string) {
	st := p.modifyUserState(userID)
	st.Enabled = state
	st.LastDisableAppCaller = callingPackage
	p.emit(activity.BuildEnabledStateChangedEvent(activity.StateEventInput{
		Package:      p.name,
		Actor:        callingPackage,
		DeviceUserID: userID,
		Metadata:     map[string]any{"enabled_state": state.String()},
	}))
}

// Enabled returns the package-level enable override for userID.
func (p *PackageSetting) Enabled(userID int) EnabledState {
	return p.ReadUserState(userID).Enabled
}

// LastDisabledAppCaller returns the package that last changed the enabled
// state for userID.
func (p *PackageSetting) LastDisabledAppCaller(userID int) string {
	return p.ReadUserState(userID).LastDisableAppCaller
}

// SetInstalled flags the package as installed (or not) for userID. Clearing
// the flag keeps the record so stopped/hidden and friends survive a
// reinstall.
func (p *PackageSetting) SetInstalled(installed bool, userID int) {
	p.modifyUserState(userID).Installed = installed
}

// Installed reports whether the package is installed for userID.
func (p *PackageSetting) Installed(userID int) bool {
	return p.ReadUserState(userID).Installed
}

// SetInstallReason records why the package was installed for userID.
func (p *PackageSetting) SetInstallReason(reason InstallReason, userID int) {
	p.modifyUserState(userID).InstallReason = reason
}

// InstallReasonForUser returns the recorded install reason for userID.
func (p *PackageSetting) InstallReasonForUser(userID int) InstallReason {
	return p.ReadUserState(userID).InstallReason
}

// SetUninstallReason records why the package was removed for userID.
func (p *PackageSetting) SetUninstallReason(reason UninstallReason, userID int) {
	p.modifyUserState(userID).UninstallReason = reason
}

// UninstallReasonForUser returns the recorded uninstall reason for userID.
func (p *PackageSetting) UninstallReasonForUser(userID int) UninstallReason {
	return p.ReadUserState(userID).UninstallReason
}

// SetStopped flags the package as force-stopped for userID.
func (p *PackageSetting) SetStopped(stopped bool, userID int) {
	p.modifyUserState(userID).Stopped = stopped
}

// Stopped reports whether the package is force-stopped for userID.
func (p *PackageSetting) Stopped(userID int) bool {
	return p.ReadUserState(userID).Stopped
}

// SetNotLaunched flags that the user has never launched the package.
func (p *PackageSetting) SetNotLaunched(notLaunched bool, userID int) {
	p.modifyUserState(userID).NotLaunched = notLaunched
}

// NotLaunched reports whether the user has never launched the package.
func (p *PackageSetting) NotLaunched(userID int) bool {
	return p.ReadUserState(userID).NotLaunched
}

// SetHidden hides or reveals the package for userID.
func (p *PackageSetting) SetHidden(hidden bool, userID int) {
	p.modifyUserState(userID).Hidden = hidden
}

// Hidden reports whether the package is hidden for userID.
func (p *PackageSetting) Hidden(userID int) bool {
	return p.ReadUserState(userID).Hidden
}

// SetDistractionFlags replaces the distraction restriction bitmask.
func (p *PackageSetting) SetDistractionFlags(flags int, userID int) {
	p.modifyUserState(userID).DistractionFlags = flags
}

// DistractionFlags returns the distraction restriction bitmask for userID.
func (p *PackageSetting) DistractionFlags(userID int) int {
	return p.ReadUserState(userID).DistractionFlags
}

// SetInstantApp flags the package as an instant-app install for userID.
func (p *PackageSetting) SetInstantApp(instantApp bool, userID int) {
	p.modifyUserState(userID).InstantApp = instantApp
}

// InstantApp reports whether the package is an instant-app install.
func (p *PackageSetting) InstantApp(userID int) bool {
	return p.ReadUserState(userID).InstantApp
}

// SetVirtualPreload flags the package as a virtual preload for userID.
func (p *PackageSetting) SetVirtualPreload(virtualPreload bool, userID int) {
	p.modifyUserState(userID).VirtualPreload = virtualPreload
}

// VirtualPreload reports whether the package is a virtual preload.
func (p *PackageSetting) VirtualPreload(userID int) bool {
	return p.ReadUserState(userID).VirtualPreload
}

// SetHarmfulAppWarning records the warning shown before launching a package
// flagged as harmful. Empty clears it.
func (p *PackageSetting) SetHarmfulAppWarning(warning string, userID int) {
	p.modifyUserState(userID).HarmfulAppWarning = warning
}

// HarmfulAppWarning returns the recorded harmful-app warning, if any.
func (p *PackageSetting) HarmfulAppWarning(userID int) string {
	return p.ReadUserState(userID).HarmfulAppWarning
}

// SetCEDataInode records the credential-encrypted data directory inode used
// for storage bookkeeping. Opaque to this engine.
func (p *PackageSetting) SetCEDataInode(inode int64, userID int) {
	p.modifyUserState(userID).CEDataInode = inode
}

// CEDataInode returns the recorded credential-encrypted data inode.
func (p *PackageSetting) CEDataInode(userID int) int64 {
	return p.ReadUserState(userID).CEDataInode
}

// SetOverlayPaths replaces the per-user resource overlay paths. Nil clears.
func (p *PackageSetting) SetOverlayPaths(paths []string, userID int) {
	p.modifyUserState(userID).OverlayPaths = cloneStrings(paths)
}

// OverlayPaths returns the per-user resource overlay paths.
func (p *PackageSetting) OverlayPaths(userID int) []string {
	return p.ReadUserState(userID).OverlayPaths
}

// SetOverlayPathsForLibrary replaces overlay paths for one shared library.
// Nil paths removes the library entry.
func (p *PackageSetting) SetOverlayPathsForLibrary(libName string, paths []string, userID int) {
	state := p.modifyUserState(userID)
	if paths == nil {
		delete(state.SharedLibraryOverlayPaths, libName)
		return
	}
	if state.SharedLibraryOverlayPaths == nil {
		state.SharedLibraryOverlayPaths = make(map[string][]string, 1)
	}
	state.SharedLibraryOverlayPaths[libName] = cloneStrings(paths)
}

// OverlayPathsForLibraries returns the per-shared-library overlay paths.
func (p *PackageSetting) OverlayPathsForLibraries(userID int) map[string][]string {
	return p.ReadUserState(userID).SharedLibraryOverlayPaths
}

// OverrideLabelAndIcon records a non-localized label/icon override for
// component, returning whether anything changed.
func (p *PackageSetting) OverrideLabelAndIcon(component string, label *string, icon *int, userID int) bool {
	return p.modifyUserState(userID).overrideLabelAndIcon(component, label, icon)
}

// ResetOverrideComponentLabelIcon clears every label/icon override for
// userID, reporting whether any were present.
func (p *PackageSetting) ResetOverrideComponentLabelIcon(userID int) bool {
	return p.modifyUserState(userID).resetOverrideComponentLabelIcon()
}

// SetUserState replaces userID's record wholesale from persisted state. The
// given value is stored exactly as supplied, including the suspended flag and
// component set references; persisted state is trusted to be self-consistent
// and no invariants are re-derived.
func (p *PackageSetting) SetUserState(userID int, other UserState) {
	state := p.modifyUserState(userID)
	*state = other
}
