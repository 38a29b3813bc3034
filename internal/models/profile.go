package models

// Profile is the current user's profile as shown on the profile view. There
// is no user table yet; the profile is placeholder data served in-memory and
// edits are rejected as not yet supported.
type Profile struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Location   string    `json:"location"`
	Bio        string    `json:"bio"`
	Rating     float64   `json:"rating"`
	TotalRides int       `json:"totalRides"`
	JoinDate   string    `json:"joinDate"`
	Vehicles   []Vehicle `json:"vehicles"`
}

// Vehicle is one of the profile's listed vehicles. Verification is a stubbed
// operation, so Verified never changes at runtime.
type Vehicle struct {
	Type     string `json:"type"`
	Model    string `json:"model"`
	Seats    int    `json:"seats"`
	Verified bool   `json:"verified"`
}

// Review is a rating left by another member. Reviewer is a display name, not
// a reference to any account.
type Review struct {
	ID       uint    `json:"id"`
	Reviewer string  `json:"reviewer"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Date     string  `json:"date"`
}
