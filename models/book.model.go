package models

import "gorm.io/gorm"

// Book carries two derived fields, AverageRating and ReviewCount. They are
// written only by the aggregate recomputation in the store layer and are
// never accepted from a client.
type Book struct {
	gorm.Model
	Title         string  `gorm:"not null;index"  json:"title"`
	Author        string  `gorm:"not null;index"  json:"author"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	CoverImage    string  `gorm:"default:''"      json:"coverImage"`
	Genre         string  `gorm:"index"           json:"genre"`
	PublishedYear int     `json:"publishedYear"`
	IsFeatured    bool    `gorm:"default:false"   json:"isFeatured"`
	AverageRating float64 `gorm:"default:0"       json:"averageRating"`
	ReviewCount   int     `gorm:"default:0"       json:"reviewCount"`
}
