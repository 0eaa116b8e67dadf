package models

type BookModel struct {
	Id           int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string  `json:"title" gorm:"type:varchar(255);not null"`
	Author       *string `json:"author" gorm:"type:varchar(255)"`
	Category     *string `json:"category" gorm:"type:varchar(100)"`
	ISBN         string  `json:"isbn" gorm:"column:isbn;type:varchar(32);uniqueIndex;not null"`
	Availability *bool   `json:"availability" gorm:"type:boolean;default:true;not null"`
}
