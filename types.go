package pm

// EnabledState models the per-user (or per-component) enable override.
type EnabledState int

const (
	// EnabledStateDefault defers to the package manifest.
	EnabledStateDefault EnabledState = iota
	// EnabledStateEnabled is an explicit enable override.
	EnabledStateEnabled
	// EnabledStateDisabled is an explicit disable override.
	EnabledStateDisabled
	// EnabledStateDisabledUser marks a disable requested by the user.
	EnabledStateDisabledUser
	// EnabledStateDisabledUntilUsed hides the package until first use.
	EnabledStateDisabledUntilUsed
)

func (s EnabledState) String() string {
	switch s {
	case EnabledStateDefault:
		return "default"
	case EnabledStateEnabled:
		return "enabled"
	case EnabledStateDisabled:
		return "disabled"
	case EnabledStateDisabledUser:
		return "disabled-user"
	case EnabledStateDisabledUntilUsed:
		return "disabled-until-used"
	default:
		return "unknown"
	}
}

// InstallReason records why a package was installed for a user.
type InstallReason int

const (
	InstallReasonUnknown InstallReason = iota
	InstallReasonPolicy
	InstallReasonDeviceRestore
	InstallReasonDeviceSetup
	InstallReasonUser
)

// UninstallReason records why a package was removed for a user.
type UninstallReason int

const (
	UninstallReasonUnknown UninstallReason = iota
	UninstallReasonUserType
)

// VerificationStatus tracks whether a package is confirmed to handle a web
// domain's links for a given user.
type VerificationStatus int

const (
	VerificationStatusUndefined VerificationStatus = iota
	VerificationStatusAsk
	VerificationStatusAlways
	VerificationStatusNever
)

// Distraction restriction flags. Combined as a bitmask per user.
const (
	DistractionFlagNone                = 0
	DistractionFlagHideFromSuggestions = 1 << 0
	DistractionFlagHideNotifications   = 1 << 1
)

// CategoryUndefined is the category hint for packages whose installer never
// declared one.
const CategoryUndefined = -1

// InstallType classifies how a package is present for a user in diagnostic
// reports. Instant-app takes precedence over a full install.
type InstallType string

const (
	InstallTypeInstantApp   InstallType = "instant_app_install"
	InstallTypeFull         InstallType = "full_app_install"
	InstallTypeNotInstalled InstallType = "not_installed_for_user"
)
