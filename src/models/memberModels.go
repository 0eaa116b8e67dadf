package models

type MemberModel struct {
	Id      int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string  `json:"name" gorm:"type:varchar(100);not null"`
	Address *string `json:"address" gorm:"type:varchar(255)"`
	// Contact is deliberately not unique: two members of one household
	// may register the same phone number.
	Contact string `json:"contact" gorm:"type:varchar(50);not null"`
}
