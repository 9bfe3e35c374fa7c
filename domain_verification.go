package pm

// DomainVerificationStatusForUser returns the verification state packed into
// one 64-bit value: the high 32 bits hold the status, the low 32 bits the
// app-link generation used as relative priority among "always" packages.
// Pure read, no side effects; intended for cheap comparison and sorting.
func (p *PackageSetting) DomainVerificationStatusForUser(userID int) uint64 {
	state := p.ReadUserState(userID)
	return uint64(state.DomainVerificationStatus)<<32 | uint64(uint32(state.AppLinkGeneration))
}

// SetDomainVerificationStatusForUser writes the verification status. The
// generation is recorded only when status is VerificationStatusAlways; it is
// meaningless for the other states and must survive transient
// undefined/ask/never transitions.
func (p *PackageSetting) SetDomainVerificationStatusForUser(status VerificationStatus, generation, userID int) {
	state := p.modifyUserState(userID)
	state.DomainVerificationStatus = status
	if status == VerificationStatusAlways {
		state.AppLinkGeneration = generation
	}
}

// ClearDomainVerificationStatusForUser resets the status to undefined,
// leaving the generation untouched.
func (p *PackageSetting) ClearDomainVerificationStatusForUser(userID int) {
	p.modifyUserState(userID).DomainVerificationStatus = VerificationStatusUndefined
}

// UnpackDomainVerificationStatus splits a value produced by
// DomainVerificationStatusForUser back into status and generation.
func UnpackDomainVerificationStatus(packed uint64) (VerificationStatus, int) {
	return VerificationStatus(packed >> 32), int(int32(uint32(packed)))
}
