package models

// Doctor is a registered doctor offered in the booking form.
type Doctor struct {
	DID        uint   `gorm:"column:did;primaryKey" json:"did"`
	Email      string `gorm:"size:50" json:"email"`
	Doctorname string `gorm:"size:50" json:"doctorname"`
	Dept       string `gorm:"size:50" json:"dept"`
}

func (Doctor) TableName() string { return "doctors" }
