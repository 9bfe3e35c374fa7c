package pm

// Signature is an opaque signing certificate digest produced by the
// cryptographic-identity collaborator.
type Signature string

// SigningDetails carries the verified signing lineage for a package.
type SigningDetails struct {
	Signatures    []Signature
	SchemeVersion int
}

// PackageSignatures wraps the signing identity attached to a setting. The
// same instance is shared by reference across shallow copies; mutations
// through one handle are visible through all holders.
type PackageSignatures struct {
	SigningDetails SigningDetails
}

// KeySetData tracks the key sets a package signs with and the aliases it
// declares. Opaque to this engine beyond reference sharing.
type KeySetData struct {
	ProperSigningKeySet int64
	UpgradeKeySets      []int64
	Aliases             map[string]int64
}

// VerificationInfo is the intent-filter verification record supplied by the
// domain-verification collaborator. Shared by reference across copies.
type VerificationInfo struct {
	PackageName string
	Domains     []string
	Status      VerificationStatus
}
