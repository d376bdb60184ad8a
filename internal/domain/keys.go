package domain

// Draft store keys. Each holds a JSON- or plain-string-encoded value.
// There is no schema versioning: renaming a key needs a manual migration.
const (
	KeyProgramData = "programData" // Constraint, JSON
	KeySavedPlaces = "savedPlaces" // SelectionSet, JSON
	KeyWizardStep  = "wizardStep"  // Step, plain
	KeyToken       = "token"       // bearer token, plain
	KeyUser        = "user"        // User, JSON
	KeyFirstName   = "firstname"
	KeyLastName    = "lastname"
	KeyEmail       = "email"
	KeyPhone       = "phone"
	KeyAddress     = "address"
	KeyBirthdate   = "birthdate"
	KeyTheme       = "theme" // "light" or "dark"
)

// SessionKeys are removed on logout.
var SessionKeys = []string{KeyUser, KeyToken, KeyFirstName, KeyLastName, KeyEmail}
