package pm

import (
	"encoding/json"

	"github.com/google/uuid"
)

// UserReport is one user's row in a diagnostic report.
type UserReport struct {
	UserID               int          `json:"user_id"`
	InstallType          InstallType  `json:"install_type"`
	Hidden               bool         `json:"is_hidden"`
	DistractionFlags     int          `json:"distraction_flags"`
	Suspended            bool         `json:"is_suspended"`
	SuspendingActors     []string     `json:"suspending_actors,omitempty"`
	Stopped              bool         `json:"is_stopped"`
	Launched             bool         `json:"is_launched"`
	EnabledState         EnabledState `json:"enabled_state"`
	LastDisableAppCaller string       `json:"last_disable_app_caller,omitempty"`
}

// Report is a read-only snapshot of the per-user table for diagnostics. The
// ID is a fresh correlation identifier so exports can be matched across
// collection pipelines.
type Report struct {
	ID      string       `json:"id"`
	Package string       `json:"package"`
	Users   []UserReport `json:"users,omitempty"`
}

// UsersReport traverses the user-state table in ascending user id order and
// builds a diagnostic report. The traversal never mutates the table and is
// safe to run concurrently with reads under the caller's locking discipline.
func (p *PackageSetting) UsersReport() Report {
	report := Report{
		ID:      uuid.NewString(),
		Package: p.name,
	}
	for _, userID := range p.UserIDs() {
		state := p.userStates[userID]
		installType := InstallTypeNotInstalled
		switch {
		case state.InstantApp:
			installType = InstallTypeInstantApp
		case state.Installed:
			installType = InstallTypeFull
		}
		report.Users = append(report.Users, UserReport{
			UserID:               userID,
			InstallType:          installType,
			Hidden:               state.Hidden,
			DistractionFlags:     state.DistractionFlags,
			Suspended:            state.Suspended,
			SuspendingActors:     state.SuspendingActors(),
			Stopped:              state.Stopped,
			Launched:             !state.NotLaunched,
			EnabledState:         state.Enabled,
			LastDisableAppCaller: state.LastDisableAppCaller,
		})
	}
	return report
}

// ToJSON serialises the report for logging or transport helpers.
func (r Report) ToJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(alias(r))
}

// ReportFromJSON deserialises a payload previously produced by ToJSON.
func ReportFromJSON(payload []byte) (Report, error) {
	type alias Report
	var report alias
	if err := json.Unmarshal(payload, &report); err != nil {
		return Report{}, err
	}
	return Report(report), nil
}
