package models

import (
	"github.com/google/uuid"
)

// JarCategory records that expenses of one external category count toward
// one jar. The category itself lives in the expense module; only its ID and
// an optional name snapshot are kept here.
type JarCategory struct {
	DefaultModel
	JarID        uuid.UUID `json:"jarId" gorm:"uniqueIndex:jar_category_jar_category"`      // Jar tracking the category
	Jar          Jar       `json:"-" gorm:"constraint:OnDelete:CASCADE"`                    // The owning jar
	CategoryID   uuid.UUID `json:"categoryId" gorm:"uniqueIndex:jar_category_jar_category"` // External category being tracked
	CategoryName string    `json:"categoryName,omitempty"`                                  // Optional denormalized category name
}
