package pm

// InstallSource describes how a package arrived on the device. Values are
// immutable; mutating accessors return a new value so the same instance can
// be shared by reference across shallow copies of a setting.
type InstallSource struct {
	// InstallerPackageName is the package that requested the install.
	InstallerPackageName string
	// InitiatingPackageName is the package that performed the install.
	InitiatingPackageName string
	// OriginatingPackageName is the package the install was downloaded on
	// behalf of, when known.
	OriginatingPackageName string
	// IsOrphaned is set once the installer is uninstalled or removed.
	IsOrphaned bool
	// IsInitiatingPackageUninstalled tracks whether the initiator is gone.
	IsInitiatingPackageUninstalled bool
}

// EmptyInstallSource is the canonical zero install source shared by settings
// that have no provenance information yet.
var EmptyInstallSource = &InstallSource{}

// NewInstallSource builds an install source from provenance package names.
func NewInstallSource(installer, initiating, originating string) *InstallSource {
	if installer == "" && initiating == "" && originating == "" {
		return EmptyInstallSource
	}
	return &InstallSource{
		InstallerPackageName:   installer,
		InitiatingPackageName:  initiating,
		OriginatingPackageName: originating,
	}
}

// WithInstallerPackage returns a source whose installer is name. The receiver
// is returned unchanged when the installer already matches.
func (s *InstallSource) WithInstallerPackage(name string) *InstallSource {
	if s.InstallerPackageName == name {
		return s
	}
	out := *s
	out.InstallerPackageName = name
	out.IsOrphaned = false
	return &out
}

// WithOrphaned returns a source with the orphaned flag set to orphaned.
func (s *InstallSource) WithOrphaned(orphaned bool) *InstallSource {
	if s.IsOrphaned == orphaned {
		return s
	}
	out := *s
	out.IsOrphaned = orphaned
	return &out
}

// RemoveInstallerPackage strips any provenance reference to name, orphaning
// the source when name was the recorded installer. The receiver is returned
// unchanged when name appears nowhere.
func (s *InstallSource) RemoveInstallerPackage(name string) *InstallSource {
	if name == "" {
		return s
	}
	matchInstaller := s.InstallerPackageName == name
	matchInitiating := s.InitiatingPackageName == name
	matchOriginating := s.OriginatingPackageName == name
	if !matchInstaller && !matchInitiating && !matchOriginating {
		return s
	}
	out := *s
	if matchInstaller {
		out.InstallerPackageName = ""
		out.IsOrphaned = true
	}
	if matchInitiating {
		out.IsInitiatingPackageUninstalled = true
	}
	if matchOriginating {
		out.OriginatingPackageName = ""
	}
	return &out
}
