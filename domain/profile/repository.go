package profile

// Store defines the interface for profile persistence.
// This interface follows the Repository pattern to abstract data access.
type Store interface {
	// Load reads the persisted profile. A missing or corrupt document is
	// not an error: the built-in defaults are returned instead.
	Load() *Profile

	// Save writes the profile, overwriting any previous document.
	// A write failure is returned so the caller can report it; it is
	// never fatal to the application.
	Save(p *Profile) error

	// Path returns the location of the persisted document, for reporting.
	Path() string
}
