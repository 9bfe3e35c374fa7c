package pm

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-pm/pkg/activity"
)

// ErrNilInstallSource is returned when a caller tries to clear the install
// source. Install provenance is safety-relevant; use EmptyInstallSource to
// represent the absence of information.
var ErrNilInstallSource = errors.New("pm: install source must not be nil")

// PackageSetting is the state record for one managed package: immutable
// identity, package-scoped installation metadata, and the sparse per-user
// state table. The record performs no locking; callers serialize access.
type PackageSetting struct {
	name     string
	realName string

	codePath                string
	resourcePath            string
	legacyNativeLibraryPath string

	primaryCPUABI   string
	secondaryCPUABI string
	cpuABIOverride  string

	usesStaticLibraries       []string
	usesStaticLibraryVersions []int64

	lastScanTime     time.Time
	firstInstallTime time.Time
	lastUpdateTime   time.Time

	versionCode int64

	uidError                bool
	installPermissionsFixed bool

	// Shared value objects. Shallow copies alias these; mutating through one
	// handle is visible through all holders.
	signatures       *PackageSignatures
	keySetData       *KeySetData
	installSource    *InstallSource
	verificationInfo *VerificationInfo

	volumeUUID             string
	categoryHint           int
	updateAvailable        bool
	forceQueryableOverride bool

	// oldCodePaths is transient upgrade bookkeeping. It is deliberately not
	// carried by CopyFrom; UpdateFrom refills it from the source.
	oldCodePaths map[string]struct{}

	userStates map[int]*UserState

	emitter *activity.Emitter
}

// SettingOption configures optional construction-time metadata.
type SettingOption func(*PackageSetting)

// WithLegacyNativeLibraryPath records the legacy native-library unpack path.
func WithLegacyNativeLibraryPath(path string) SettingOption {
	return func(p *PackageSetting) {
		p.legacyNativeLibraryPath = path
	}
}

// WithCPUABIs records the primary, secondary, and install-time override ABI
// strings.
func WithCPUABIs(primary, secondary, override string) SettingOption {
	return func(p *PackageSetting) {
		p.primaryCPUABI = primary
		p.secondaryCPUABI = secondary
		p.cpuABIOverride = override
	}
}

// WithStaticLibraries records the declared static library dependencies. The
// name/version slices are stored as given; length agreement is the caller's
// contract, not validated here.
func WithStaticLibraries(names []string, versions []int64) SettingOption {
	return func(p *PackageSetting) {
		p.usesStaticLibraries = names
		p.usesStaticLibraryVersions = versions
	}
}

// WithActivityEmitter attaches an activity emitter notified on per-user state
// transitions. Emission is synchronous and never alters engine behaviour.
func WithActivityEmitter(emitter *activity.Emitter) SettingOption {
	return func(p *PackageSetting) {
		p.emitter = emitter
	}
}

// NewPackageSetting constructs the record for a newly discovered package.
// realName may differ from name for renamed packages; both are immutable
// afterwards.
func NewPackageSetting(name, realName, codePath, resourcePath string, versionCode int64, opts ...SettingOption) *PackageSetting {
	p := &PackageSetting{
		name:          name,
		realName:      realName,
		codePath:      codePath,
		resourcePath:  resourcePath,
		versionCode:   versionCode,
		signatures:    &PackageSignatures{},
		keySetData:    &KeySetData{},
		installSource: EmptyInstallSource,
		categoryHint:  CategoryUndefined,
		userStates:    make(map[int]*UserState),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Name returns the package name.
func (p *PackageSetting) Name() string { return p.name }

// RealName returns the on-disk name, which may differ from Name for renamed
// packages.
func (p *PackageSetting) RealName() string { return p.realName }

// CodePath returns where the package was found on disk.
func (p *PackageSetting) CodePath() string { return p.codePath }

// ResourcePath returns the package resource location.
func (p *PackageSetting) ResourcePath() string { return p.resourcePath }

// LegacyNativeLibraryPath returns the legacy native-library unpack path.
func (p *PackageSetting) LegacyNativeLibraryPath() string { return p.legacyNativeLibraryPath }

// PrimaryCPUABI returns the primary ABI string.
func (p *PackageSetting) PrimaryCPUABI() string { return p.primaryCPUABI }

// SecondaryCPUABI returns the secondary ABI string.
func (p *PackageSetting) SecondaryCPUABI() string { return p.secondaryCPUABI }

// CPUABIOverride returns the install-time ABI override, if any.
func (p *PackageSetting) CPUABIOverride() string { return p.cpuABIOverride }

// UsesStaticLibraries returns the declared static library names.
func (p *PackageSetting) UsesStaticLibraries() []string { return p.usesStaticLibraries }

// UsesStaticLibraryVersions returns the declared static library versions.
func (p *PackageSetting) UsesStaticLibraryVersions() []int64 { return p.usesStaticLibraryVersions }

// VersionCode returns the declared package version.
func (p *PackageSetting) VersionCode() int64 { return p.versionCode }

// SetVersionCode updates the declared package version.
func (p *PackageSetting) SetVersionCode(version int64) { p.versionCode = version }

// SetLastScanTime stamps the most recent scan of the package on disk.
func (p *PackageSetting) SetLastScanTime(stamp time.Time) { p.lastScanTime = stamp }

// LastScanTime returns the most recent on-disk scan stamp.
func (p *PackageSetting) LastScanTime() time.Time { return p.lastScanTime }

// SetFirstInstallTime records when the package was first installed.
func (p *PackageSetting) SetFirstInstallTime(stamp time.Time) { p.firstInstallTime = stamp }

// FirstInstallTime returns the first-install stamp.
func (p *PackageSetting) FirstInstallTime() time.Time { return p.firstInstallTime }

// SetLastUpdateTime records the most recent update.
func (p *PackageSetting) SetLastUpdateTime(stamp time.Time) { p.lastUpdateTime = stamp }

// LastUpdateTime returns the last-update stamp.
func (p *PackageSetting) LastUpdateTime() time.Time { return p.lastUpdateTime }

// SetInstallSource replaces the install provenance descriptor. A nil source
// is a contract violation and fails fast.
func (p *PackageSetting) SetInstallSource(source *InstallSource) error {
	if source == nil {
		return ErrNilInstallSource
	}
	p.installSource = source
	return nil
}

// InstallSource returns the shared install provenance descriptor.
func (p *PackageSetting) InstallSource() *InstallSource { return p.installSource }

// SetInstallerPackageName rewrites the installer while keeping the rest of
// the provenance intact.
func (p *PackageSetting) SetInstallerPackageName(packageName string) {
	p.installSource = p.installSource.WithInstallerPackage(packageName)
}

// InstallerPackageName returns the recorded installer, if any.
func (p *PackageSetting) InstallerPackageName() string {
	return p.installSource.InstallerPackageName
}

// RemoveInstallerPackage strips provenance references to packageName,
// orphaning the source when it was the installer.
func (p *PackageSetting) RemoveInstallerPackage(packageName string) {
	p.installSource = p.installSource.RemoveInstallerPackage(packageName)
}

// SetOrphaned toggles the orphaned flag on the install source.
func (p *PackageSetting) SetOrphaned(orphaned bool) {
	p.installSource = p.installSource.WithOrphaned(orphaned)
}

// Signatures returns the verified signature list from the shared signing
// identity.
func (p *PackageSetting) Signatures() []Signature {
	return p.signatures.SigningDetails.Signatures
}

// SigningDetails returns the shared signing lineage.
func (p *PackageSetting) SigningDetails() SigningDetails {
	return p.signatures.SigningDetails
}

// SetSigningDetails replaces the signing lineage on the shared identity
// object, making the change visible through every holder.
func (p *PackageSetting) SetSigningDetails(details SigningDetails) {
	p.signatures.SigningDetails = details
}

// KeySetData returns the shared key-set record.
func (p *PackageSetting) KeySetData() *KeySetData { return p.keySetData }

// VerificationInfo returns the shared intent-filter verification record, or
// nil when verification never ran.
func (p *PackageSetting) VerificationInfo() *VerificationInfo { return p.verificationInfo }

// SetVerificationInfo replaces the shared verification record.
func (p *PackageSetting) SetVerificationInfo(info *VerificationInfo) { p.verificationInfo = info }

// SetVolumeUUID records the storage volume hosting this package.
func (p *PackageSetting) SetVolumeUUID(volumeUUID string) { p.volumeUUID = volumeUUID }

// VolumeUUID returns the hosting volume identifier.
func (p *PackageSetting) VolumeUUID() string { return p.volumeUUID }

// SetCategoryHint records the installer-provided category.
func (p *PackageSetting) SetCategoryHint(category int) { p.categoryHint = category }

// CategoryHint returns the installer-provided category.
func (p *PackageSetting) CategoryHint() int { return p.categoryHint }

// SetUpdateAvailable flags that a newer version is known to exist.
func (p *PackageSetting) SetUpdateAvailable(available bool) { p.updateAvailable = available }

// UpdateAvailable reports whether a newer version is known to exist.
func (p *PackageSetting) UpdateAvailable() bool { return p.updateAvailable }

// SetForceQueryableOverride toggles the force-queryable override.
func (p *PackageSetting) SetForceQueryableOverride(force bool) { p.forceQueryableOverride = force }

// ForceQueryableOverride reports the force-queryable override.
func (p *PackageSetting) ForceQueryableOverride() bool { return p.forceQueryableOverride }

// SetUIDError flags a UID mismatch discovered during scan.
func (p *PackageSetting) SetUIDError(uidError bool) { p.uidError = uidError }

// UIDError reports whether a UID mismatch was discovered during scan.
func (p *PackageSetting) UIDError() bool { return p.uidError }

// SetInstallPermissionsFixed marks install-time permissions as settled.
func (p *PackageSetting) SetInstallPermissionsFixed(fixed bool) { p.installPermissionsFixed = fixed }

// InstallPermissionsFixed reports whether install-time permissions settled.
func (p *PackageSetting) InstallPermissionsFixed() bool { return p.installPermissionsFixed }

// AddOldCodePath records a previous code path during an upgrade without
// restart, so new APKs can be surgically added to the active classloader.
func (p *PackageSetting) AddOldCodePath(path string) {
	if p.oldCodePaths == nil {
		p.oldCodePaths = make(map[string]struct{}, 1)
	}
	p.oldCodePaths[path] = struct{}{}
}

// OldCodePaths returns the transient previous code paths in ascending order,
// or nil when no upgrade is in flight.
func (p *PackageSetting) OldCodePaths() []string {
	return sortedKeys(p.oldCodePaths)
}

// ClearOldCodePaths drops the upgrade bookkeeping after a restart.
func (p *PackageSetting) ClearOldCodePaths() { p.oldCodePaths = nil }

func (p *PackageSetting) emit(event activity.Event) {
	if p.emitter == nil {
		return
	}
	_ = p.emitter.Emit(context.Background(), event)
}
