package pm

import (
	"reflect"
	"testing"
)

func newTestSetting(opts ...SettingOption) *PackageSetting {
	return NewPackageSetting(
		"com.example.app", "",
		"/data/app/com.example.app", "/data/app/com.example.app/res",
		1,
		opts...,
	)
}

func TestReadUserStateDefaultsWithoutMaterializing(t *testing.T) {
	setting := newTestSetting()

	state := setting.ReadUserState(7)
	if state.Installed {
		t.Fatalf("default state must not be installed")
	}
	if state.Enabled != EnabledStateDefault {
		t.Fatalf("expected default enabled state, got %v", state.Enabled)
	}
	if state.CategoryHint != CategoryUndefined {
		t.Fatalf("expected undefined category hint, got %d", state.CategoryHint)
	}
	if setting.UserStateCount() != 0 {
		t.Fatalf("read must not create table entries, got %d", setting.UserStateCount())
	}
	if setting.HasUserState(7) {
		t.Fatalf("read must not materialize user 7")
	}
}

func TestReadUserStateStampsCategoryHint(t *testing.T) {
	setting := newTestSetting()
	setting.SetInstalled(true, 0)
	setting.SetCategoryHint(3)

	if got := setting.ReadUserState(0).CategoryHint; got != 3 {
		t.Fatalf("expected stamped category hint 3, got %d", got)
	}
	// The stamp lives on the view, not the stored record.
	setting.SetCategoryHint(9)
	if got := setting.ReadUserState(0).CategoryHint; got != 9 {
		t.Fatalf("expected re-stamped category hint 9, got %d", got)
	}
}

func TestMutatorsMaterializeSingleRecord(t *testing.T) {
	setting := newTestSetting()

	setting.SetStopped(true, 4)
	setting.SetNotLaunched(true, 4)
	setting.SetHidden(true, 4)

	if setting.UserStateCount() != 1 {
		t.Fatalf("expected one record, got %d", setting.UserStateCount())
	}
	state := setting.ReadUserState(4)
	if !state.Stopped || !state.NotLaunched || !state.Hidden {
		t.Fatalf("mutations lost: %+v", state)
	}
}

func TestInstallLifecycleAcrossUsers(t *testing.T) {
	setting := newTestSetting()
	users := []int{0, 10, 11}

	if setting.IsAnyInstalled(users) {
		t.Fatalf("fresh setting must not be installed anywhere")
	}
	if got := setting.NotInstalledUserIDs(users); !reflect.DeepEqual(got, users) {
		t.Fatalf("expected all users not installed, got %v", got)
	}

	setting.SetInstalled(true, 0)
	setting.SetInstalled(true, 10)
	setting.SetInstalled(false, 10)

	if !setting.IsAnyInstalled(users) {
		t.Fatalf("expected installed for user 0")
	}
	if got := setting.QueryInstalledUsers(users, true); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected installed=[0], got %v", got)
	}
	if got := setting.NotInstalledUserIDs(users); !reflect.DeepEqual(got, []int{10, 11}) {
		t.Fatalf("expected not installed=[10 11], got %v", got)
	}
	// Uninstalling for user 10 keeps its record around.
	if !setting.HasUserState(10) {
		t.Fatalf("uninstall must not drop the user record")
	}
}

func TestUserIDsAscending(t *testing.T) {
	setting := newTestSetting()
	for _, userID := range []int{11, 0, 10} {
		setting.SetInstalled(true, userID)
	}
	if got := setting.UserIDs(); !reflect.DeepEqual(got, []int{0, 10, 11}) {
		t.Fatalf("expected ascending ids, got %v", got)
	}
}

func TestUserIDsWhere(t *testing.T) {
	setting := newTestSetting()
	setting.SetInstalled(true, 0)
	setting.SetInstalled(true, 10)
	setting.SetHidden(true, 10)
	setting.SetInstalled(false, 11)

	visible := setting.UserIDsWhere(func(_ int, state *UserState) bool {
		return state.Installed && !state.Hidden
	})
	if !reflect.DeepEqual(visible, []int{0}) {
		t.Fatalf("expected [0], got %v", visible)
	}

	none := setting.UserIDsWhere(func(int, *UserState) bool { return false })
	if none != nil {
		t.Fatalf("expected nil for no matches, got %v", none)
	}
}

func TestRemoveUserDropsRecord(t *testing.T) {
	setting := newTestSetting()
	setting.SetInstalled(true, 5)
	setting.RemoveUser(5)
	if setting.HasUserState(5) {
		t.Fatalf("expected record removed")
	}
	// Removing an absent user is a no-op.
	setting.RemoveUser(5)
}

func TestSetUserStateReplacesRecord(t *testing.T) {
	setting := newTestSetting()
	setting.SetInstalled(true, 0)
	setting.SetStopped(true, 0)

	replacement := defaultUserState()
	replacement.Installed = true
	replacement.Enabled = EnabledStateDisabledUser
	setting.SetUserState(0, replacement)

	state := setting.ReadUserState(0)
	if state.Stopped {
		t.Fatalf("bulk replace must discard prior flags")
	}
	if state.Enabled != EnabledStateDisabledUser {
		t.Fatalf("expected disabled-user enabled state, got %v", state.Enabled)
	}
}

func TestSetEnabledRecordsCaller(t *testing.T) {
	setting := newTestSetting()
	setting.SetEnabled(EnabledStateDisabledUser, 0, "com.android.settings")

	if got := setting.Enabled(0); got != EnabledStateDisabledUser {
		t.Fatalf("expected disabled-user state, got %v", got)
	}
	if got := setting.LastDisabledAppCaller(0); got != "com.android.settings" {
		t.Fatalf("expected caller recorded, got %q", got)
	}
}

func TestLabelIconOverrides(t *testing.T) {
	setting := newTestSetting()
	label := "Work Mail"
	icon := 42

	if !setting.OverrideLabelAndIcon("com.example.app/.Main", &label, &icon, 0) {
		t.Fatalf("first override must report a change")
	}
	if setting.OverrideLabelAndIcon("com.example.app/.Main", &label, &icon, 0) {
		t.Fatalf("identical override must report no change")
	}
	if !setting.ResetOverrideComponentLabelIcon(0) {
		t.Fatalf("reset with overrides present must report a change")
	}
	if setting.ResetOverrideComponentLabelIcon(0) {
		t.Fatalf("reset with no overrides must report no change")
	}
}
