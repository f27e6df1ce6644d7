package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"pos_insight/config"
	"pos_insight/internal/global"
)

func InitRegistry() {
	logrus.Info("Initialized registry")

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName_Data)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName_Data, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName_Data, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.Bills,
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.SalesSummaries,
		global.MongoDB_ColNames.YearlySalesSummaries,
		global.MongoDB_ColNames.ProductPerformances,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
