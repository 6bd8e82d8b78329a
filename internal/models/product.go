// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product prices are always stored in the canonical currency (USD). Conversion
// to a request currency happens at the read boundary only.
type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Category      string         `json:"category" gorm:"size:100;index"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64       `json:"original_price,omitempty" gorm:"type:decimal(10,2)"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]"`
	IsFeatured    bool           `json:"is_featured" gorm:"default:false;index"`
	// DisplayOrder ranks featured products among themselves; non-featured
	// products keep the zero value.
	DisplayOrder int `json:"order" gorm:"default:0"`

	// Relationships
	RelatedProducts []Product       `json:"related_products,omitempty" gorm:"many2many:product_related;joinForeignKey:ProductID;joinReferences:RelatedID"`
	Reviews         []ProductReview `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

type ProductReview struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	Content   string    `json:"content" gorm:"type:text"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
