package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"pos_insight/config"
	"pos_insight/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Bills                string // Tên collection cho hóa đơn bán hàng
	Products             string // Tên collection cho sản phẩm
	Categories           string // Tên collection cho danh mục sản phẩm
	SalesSummaries       string // Tên collection cho snapshot tổng hợp doanh thu theo tháng
	YearlySalesSummaries string // Tên collection cho snapshot tổng hợp doanh thu theo năm
	ProductPerformances  string // Tên collection cho snapshot hiệu suất sản phẩm theo tháng
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
