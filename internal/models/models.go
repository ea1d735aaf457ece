package models

// ID is an opaque store-assigned identifier.
type ID string

type Product struct {
	ID          ID      `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	Name        string  `gorm:"not null"                    json:"name"`
	Price       float64 `gorm:"not null"                    json:"price"`
	Description string  `gorm:"not null;default:''"         json:"description"`
	ImageURL    string  `gorm:"not null;default:''"         json:"image_url"`
}

type Admin struct {
	ID           ID     `gorm:"primaryKey;type:varchar(36)"  json:"_id"`
	Username     string `gorm:"uniqueIndex;not null"         json:"username"`
	PasswordHash string `gorm:"column:password;not null"     json:"-"`
}
