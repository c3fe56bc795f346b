package command

import "castpilot/domain/profile"

// LaunchMirror starts the external mirroring tool with arguments derived
// from the given profile snapshot. The snapshot is cloned by the sender so
// the launch is unaffected by further UI edits.
type LaunchMirror struct {
	Profile *profile.Profile
}

func NewLaunchMirror(p *profile.Profile) *LaunchMirror {
	return &LaunchMirror{Profile: p}
}

func (c *LaunchMirror) CommandName() string {
	return "LaunchMirror"
}

// SaveProfile persists the given profile snapshot to the settings store.
type SaveProfile struct {
	Profile *profile.Profile
}

func NewSaveProfile(p *profile.Profile) *SaveProfile {
	return &SaveProfile{Profile: p}
}

func (c *SaveProfile) CommandName() string {
	return "SaveProfile"
}
