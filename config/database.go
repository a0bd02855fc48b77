package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func databaseConfigByEnv(v *viper.Viper, env string) (DatabaseConfig, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_DB_"
	case "qc":
		prefix = "QC_DB_"
	case "prod":
		prefix = "PROD_DB_"
	default:
		return DatabaseConfig{}, fmt.Errorf("unknown environment: %s", env)
	}

	return DatabaseConfig{
		User:     v.GetString(prefix + "USER"),
		Password: v.GetString(prefix + "PASSWORD"),
		Host:     v.GetString(prefix + "HOST"),
		Port:     v.GetString(prefix + "PORT"),
		Name:     v.GetString(prefix + "NAME"),
		SSLMode:  v.GetString("DB_SSLMODE"),
	}, nil
}

// DSN trả về chuỗi kết nối Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Ho_Chi_Minh",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// ConnectDB mở kết nối gorm tới Postgres
func ConnectDB(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, nil
}
