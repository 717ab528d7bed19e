package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a sellable item. Available doubles as the soft-delete flag:
// retired products keep their record but drop out of default listings.
// CategoryID may dangle after an admin removes the category; the reference
// is never repaired and resolution simply yields no category.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"nombre" bson:"nombre"`
	UnitPrice   float64 `json:"precioUni" bson:"precioUni"`
	Description string  `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Available   bool    `json:"disponible" bson:"disponible"`
	CategoryID  string  `json:"categoria,omitempty" bson:"categoria,omitempty"`
	CreatedBy   string  `json:"usuario,omitempty" bson:"usuario,omitempty"`
}
