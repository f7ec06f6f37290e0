package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/vitalpoint/callhub-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("callhub")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	// the QA mirror store is optional; reports flow without it
	if conn := viper.GetString("orm.conn"); conn != "" {
		db, err := gorm.Open("postgres", conn)
		if err != nil {
			panic(err)
		}

		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
			panic(err)
		}

		if err := db.AutoMigrate(&schema.ReportMirror{}).Error; err != nil {
			panic(err)
		}
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
