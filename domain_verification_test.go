package pm

import "testing"

func TestDomainVerificationPacksStatusAndGeneration(t *testing.T) {
	setting := newTestSetting()
	setting.SetDomainVerificationStatusForUser(VerificationStatusAlways, 5, 0)

	packed := setting.DomainVerificationStatusForUser(0)
	status, generation := UnpackDomainVerificationStatus(packed)
	if status != VerificationStatusAlways {
		t.Fatalf("expected always, got %v", status)
	}
	if generation != 5 {
		t.Fatalf("expected generation 5, got %d", generation)
	}
}

func TestDomainVerificationGenerationOnlyWrittenForAlways(t *testing.T) {
	setting := newTestSetting()
	setting.SetDomainVerificationStatusForUser(VerificationStatusAlways, 5, 0)

	// A transition away from "always" must not disturb the generation.
	setting.SetDomainVerificationStatusForUser(VerificationStatusAsk, 99, 0)
	status, generation := UnpackDomainVerificationStatus(setting.DomainVerificationStatusForUser(0))
	if status != VerificationStatusAsk {
		t.Fatalf("expected ask, got %v", status)
	}
	if generation != 5 {
		t.Fatalf("generation must survive non-always writes, got %d", generation)
	}

	// Returning to "always" takes the new generation.
	setting.SetDomainVerificationStatusForUser(VerificationStatusAlways, 6, 0)
	_, generation = UnpackDomainVerificationStatus(setting.DomainVerificationStatusForUser(0))
	if generation != 6 {
		t.Fatalf("expected generation 6, got %d", generation)
	}
}

func TestClearDomainVerificationStatus(t *testing.T) {
	setting := newTestSetting()
	setting.SetDomainVerificationStatusForUser(VerificationStatusAlways, 7, 0)
	setting.ClearDomainVerificationStatusForUser(0)

	status, generation := UnpackDomainVerificationStatus(setting.DomainVerificationStatusForUser(0))
	if status != VerificationStatusUndefined {
		t.Fatalf("expected undefined after clear, got %v", status)
	}
	if generation != 7 {
		t.Fatalf("clear must leave the generation, got %d", generation)
	}
}

func TestDomainVerificationDefaultIsZero(t *testing.T) {
	setting := newTestSetting()
	if packed := setting.DomainVerificationStatusForUser(3); packed != 0 {
		t.Fatalf("expected zero packed value for unknown user, got %d", packed)
	}
}
