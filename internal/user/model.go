package user

// StaffAccount is a store employee allowed to use the staff surface:
// catalog edits, checkout, reports.
type StaffAccount struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}
