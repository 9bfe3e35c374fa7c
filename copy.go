package pm

// NewFromBase constructs a new setting as a one-level-deep clone of base,
// sharing base's name and taking a possibly different realName.
//
// A shallow copy does NOT create new contained objects: changes to a user
// state reachable from the clone also change it as seen from base, and the
// signing identity, key-set data, install source, and verification info stay
// shared until one side replaces them wholesale.
func NewFromBase(base *PackageSetting, realName string) *PackageSetting {
	p := &PackageSetting{
		name:       base.name,
		realName:   realName,
		userStates: make(map[int]*UserState, len(base.userStates)),
		emitter:    base.emitter,
	}
	p.doCopy(base)
	return p
}

// CopyFrom makes a shallow copy of src into p. Identity fields are left
// untouched; see NewFromBase for the sharing semantics.
func (p *PackageSetting) CopyFrom(src *PackageSetting) {
	p.doCopy(src)
}

func (p *PackageSetting) doCopy(src *PackageSetting) {
	p.codePath = src.codePath
	p.resourcePath = src.resourcePath
	p.legacyNativeLibraryPath = src.legacyNativeLibraryPath
	p.primaryCPUABI = src.primaryCPUABI
	p.secondaryCPUABI = src.secondaryCPUABI
	p.cpuABIOverride = src.cpuABIOverride
	p.lastScanTime = src.lastScanTime
	p.firstInstallTime = src.firstInstallTime
	p.lastUpdateTime = src.lastUpdateTime
	p.versionCode = src.versionCode
	p.uidError = src.uidError
	p.installPermissionsFixed = src.installPermissionsFixed
	p.signatures = src.signatures
	p.keySetData = src.keySetData
	p.installSource = src.installSource
	p.verificationInfo = src.verificationInfo
	p.volumeUUID = src.volumeUUID
	p.categoryHint = src.categoryHint
	p.updateAvailable = src.updateAvailable
	p.forceQueryableOverride = src.forceQueryableOverride
	// Intentionally skip oldCodePaths; it is not relevant for copies.
	p.usesStaticLibraries = cloneStrings(src.usesStaticLibraries)
	p.usesStaticLibraryVersions = cloneInt64s(src.usesStaticLibraryVersions)
	if p.userStates == nil {
		p.userStates = make(map[int]*UserState, len(src.userStates))
	} else {
		clear(p.userStates)
	}
	for userID, state := range src.userStates {
		p.userStates[userID] = state
	}
}

// UpdateFrom absorbs an in-place refresh from a newer scan of the same
// package. Unlike CopyFrom it shares the static library slices by reference
// and carries the transient oldCodePaths bookkeeping, since the destination
// may be mid-upgrade. Returns p for chaining.
func (p *PackageSetting) UpdateFrom(other *PackageSetting) *PackageSetting {
	p.codePath = other.codePath
	p.resourcePath = other.resourcePath
	p.legacyNativeLibraryPath = other.legacyNativeLibraryPath
	p.primaryCPUABI = other.primaryCPUABI
	p.secondaryCPUABI = other.secondaryCPUABI
	p.cpuABIOverride = other.cpuABIOverride
	p.usesStaticLibraries = other.usesStaticLibraries
	p.usesStaticLibraryVersions = other.usesStaticLibraryVersions
	p.lastScanTime = other.lastScanTime
	p.firstInstallTime = other.firstInstallTime
	p.lastUpdateTime = other.lastUpdateTime
	p.versionCode = other.versionCode
	p.uidError = other.uidError
	p.installPermissionsFixed = other.installPermissionsFixed
	p.signatures = other.signatures
	p.keySetData = other.keySetData
	p.installSource = other.installSource
	p.verificationInfo = other.verificationInfo
	p.volumeUUID = other.volumeUUID
	p.categoryHint = other.categoryHint
	p.updateAvailable = other.updateAvailable
	p.forceQueryableOverride = other.forceQueryableOverride

	if p.oldCodePaths != nil {
		if other.oldCodePaths != nil {
			clear(p.oldCodePaths)
			for path := range other.oldCodePaths {
				p.oldCodePaths[path] = struct{}{}
			}
		} else {
			p.oldCodePaths = nil
		}
	}

	if p.userStates == nil {
		p.userStates = make(map[int]*UserState, len(other.userStates))
	} else {
		clear(p.userStates)
	}
	for userID, state := range other.userStates {
		p.userStates[userID] = state
	}
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneInt64s(in []int64) []int64 {
	if in == nil {
		return nil
	}
	out := make([]int64, len(in))
	copy(out, in)
	return out
}
