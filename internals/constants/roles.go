package constants

import "fmt"

// Privilege levels stored in users.user_level and copied into the access token.
const (
	LevelAdmin    = 1001
	LevelStandard = 2002
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Only administrators may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// IsValidLevel reports whether l is one of the two privilege levels.
func IsValidLevel(l int) bool {
	return l == LevelAdmin || l == LevelStandard
}

func LevelName(l int) string {
	switch l {
	case LevelAdmin:
		return "administrator"
	case LevelStandard:
		return "standard"
	default:
		return "unknown"
	}
}
