package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
	Price       float64            `bson:"price"         json:"price"`
	Category    string             `bson:"category"      json:"category"`
	Brand       string             `bson:"brand"         json:"brand"`
	InStock     int32              `bson:"inStock"       json:"inStock"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username"      json:"username"`
	PasswordHash string             `bson:"password"      json:"-"`
	Role         string             `bson:"role"          json:"role"`
}
