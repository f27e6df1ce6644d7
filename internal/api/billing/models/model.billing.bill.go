// Package models - Bill thuộc domain Billing.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillCustomer chứa thông tin khách hàng trên hóa đơn
type BillCustomer struct {
	Name  string `json:"name" bson:"name"`                     // Tên khách hàng
	Phone string `json:"phone" bson:"phone"`                   // Số điện thoại
	Email string `json:"email,omitempty" bson:"email,omitempty"` // Email (optional)
}

// BillLineItem là một dòng sản phẩm trên hóa đơn
type BillLineItem struct {
	Product    primitive.ObjectID `json:"product" bson:"product"`       // Tham chiếu sản phẩm
	Name       string             `json:"name" bson:"name"`             // Tên sản phẩm tại thời điểm bán
	Quantity   int64              `json:"quantity" bson:"quantity"`     // Số lượng bán
	UnitPrice  float64            `json:"unitPrice" bson:"unitPrice"`   // Đơn giá
	Tax        float64            `json:"tax" bson:"tax"`               // Thuế của dòng
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"` // Thành tiền của dòng
}

// Bill là hóa đơn bán hàng (bills). Domain analytics chỉ đọc collection này.
type Bill struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // MongoDB _id
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber"` // Số hóa đơn, unique
	Customer      BillCustomer       `json:"customer" bson:"customer"`           // Khách hàng
	Products      []BillLineItem     `json:"products" bson:"products"`           // Các dòng sản phẩm
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`     // Tổng tiền trước giảm giá
	Discount      float64            `json:"discount" bson:"discount"`           // Giảm giá
	Cgst          float64            `json:"cgst,omitempty" bson:"cgst,omitempty"` // Thuế CGST
	Sgst          float64            `json:"sgst,omitempty" bson:"sgst,omitempty"` // Thuế SGST
	TotalTax      float64            `json:"totalTax" bson:"totalTax"`           // Tổng thuế
	FinalAmount   float64            `json:"finalAmount" bson:"finalAmount"`     // Số tiền cuối cùng, dùng tính doanh thu
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"` // Cash | Online
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`         // Thời điểm tạo hóa đơn (BSON date)
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`         // Thời điểm cập nhật
}
