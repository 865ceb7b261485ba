package models

// UserType distinguishes the two kinds of account.
type UserType string

const (
	UserTypeDoctor  UserType = "Doctor"
	UserTypePatient UserType = "Patient"
)

// User is an account that can log in. Password is kept as submitted.
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"size:50" json:"username"`
	Usertype UserType `gorm:"size:50" json:"usertype"`
	Email    string   `gorm:"size:50;uniqueIndex" json:"email"`
	Password string   `gorm:"size:1000" json:"-"`
}

// IsDoctor reports whether the account sees every booking.
func (u *User) IsDoctor() bool {
	return u.Usertype == UserTypeDoctor
}

// CheckPassword compares the stored password with the submitted one byte for byte.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

func (User) TableName() string { return "user" }
