package models

// Admin "inherits" from User via embedding and adds a password field.
// By convention, Role is "admin" for admins and defaults to "end user" for
// regular users. Age and AboutMe promote through the embedded User unchanged.
type Admin struct {
	User
	password string
}

// NewAdmin creates an admin model with Role preset to "admin".
func NewAdmin(username string) *Admin {
	return &Admin{User: User{Username: username, Role: RoleAdmin}}
}

// SetPassword stores the plaintext password on the model. Hashing happens at
// the persistence boundary; the model returns exactly what was set.
func (a *Admin) SetPassword(p string) { a.password = p }

// Password returns the password previously set on the model.
func (a *Admin) Password() string { return a.password }
