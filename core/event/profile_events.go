package event

// ProfileSaved is published when the settings profile has been written to disk.
type ProfileSaved struct {
	Path string
}

func NewProfileSaved(path string) *ProfileSaved {
	return &ProfileSaved{Path: path}
}

func (e *ProfileSaved) EventName() string {
	return "ProfileSaved"
}

// ProfileSaveFailed is published when writing the settings profile failed.
// The application keeps running; the failure is only surfaced to the user.
type ProfileSaveFailed struct {
	Path  string
	Error error
}

func NewProfileSaveFailed(path string, err error) *ProfileSaveFailed {
	return &ProfileSaveFailed{Path: path, Error: err}
}

func (e *ProfileSaveFailed) EventName() string {
	return "ProfileSaveFailed"
}
