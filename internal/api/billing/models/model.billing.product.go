// Package models - Product và Category thuộc domain Billing.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product là sản phẩm trong kho (products)
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`   // MongoDB _id
	Name          string             `json:"name" bson:"name"`                    // Tên sản phẩm
	SKU           string             `json:"sku" bson:"sku"`                      // Mã SKU, unique
	Description   string             `json:"description" bson:"description"`      // Mô tả
	Price         float64            `json:"price" bson:"price"`                  // Giá bán hiện tại
	Category      primitive.ObjectID `json:"category" bson:"category"`            // Tham chiếu danh mục
	StockQuantity int64              `json:"stockQuantity" bson:"stockQuantity"`  // Tồn kho hiện tại
	AlertQuantity int64              `json:"alertQuantity" bson:"alertQuantity"`  // Ngưỡng cảnh báo tồn kho
	Tax           float64            `json:"tax" bson:"tax"`                      // Thuế suất mặc định
}

// Category là danh mục sản phẩm (categories)
type Category struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`                          // MongoDB _id
	Name           string              `json:"name" bson:"name"`                                           // Tên danh mục
	Description    string              `json:"description,omitempty" bson:"description,omitempty"`         // Mô tả
	ParentCategory *primitive.ObjectID `json:"parentCategory,omitempty" bson:"parentCategory,omitempty"`   // Danh mục cha (nil nếu là gốc)
}
