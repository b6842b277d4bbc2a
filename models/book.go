package models

import "time"

type Book struct {
	BookID      string    `json:"bookid" bson:"bookid"`
	Title       string    `json:"title" bson:"title"`
	Author      string    `json:"author" bson:"author"`
	Genre       string    `json:"genre,omitempty" bson:"genre,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageurl,omitempty"`
	Stock       int       `json:"stock" bson:"stock"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
