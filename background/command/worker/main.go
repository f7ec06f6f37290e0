package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/vitalpoint/callhub-api/background"
	"github.com/vitalpoint/callhub-api/store"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("callhub")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initLog()

	conf := &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "callhub_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	mongoClient, err := mongo.NewClient(opts)
	if err != nil {
		log.Panicf("create mongo client with error: %s", err)
	}
	if err := mongoClient.Connect(context.Background()); err != nil {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewCallhubStore(mongoClient, viper.GetString("mongo.database"), nil)

	worker := background.NewWorker(machineryServer, mongoStore)
	if err := worker.Register(); err != nil {
		log.Panic(err)
	}

	log.WithField("prefix", "init").Info("background worker starting")
	if err := worker.Run("callhub-worker", 2); err != nil {
		log.Fatal(err)
	}
}
