package models

// Test is the connectivity probe table. It carries no business data.
type Test struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100" json:"email"`
}

func (Test) TableName() string { return "test" }
