package main

import (
	"log"

	"blogapp/config"
	"blogapp/global"
	"blogapp/router"
	"blogapp/services"
	"blogapp/utils"
)

func main() {
	config.InitConfig()
	utils.SetJWTSecret(config.AppConfig.JWT.Secret)

	uploader := services.NewImageClient(
		config.AppConfig.ImageHost.UploadURL,
		config.AppConfig.ImageHost.APIKey,
	)

	var notifier services.Notifier = services.NopNotifier{}
	if global.RabbitChannel != nil {
		notifier = services.NewAMQPNotifier(global.RabbitChannel, config.AppConfig.RabbitMQ.Queue)
	}

	r := router.SetupRouter(global.Db, global.RedisDB, notifier, uploader)

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
