package entity

// UserApp is an application user profile. The email is unique and immutable
// after creation; updates are only permitted for the profile whose stored
// email matches the authenticated caller.
type UserApp struct {
	UserAppID int64  `json:"userAppId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
}

// UserAppSortableFields is the whitelist of logical sort keys accepted by
// paginated user listings.
var UserAppSortableFields = map[string]struct{}{
	"userAppId": {},
	"email":     {},
	"name":      {},
	"lastname":  {},
}

// DefaultUserAppSort is the fallback sort key for user listings.
const DefaultUserAppSort = "userAppId"
