// Package global holds the process-wide connection handles populated by
// config.InitConfig at startup. Request handlers never touch these directly;
// main passes them into the router wiring.
package global

import (
	"github.com/go-redis/redis"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

var (
	Db            *gorm.DB
	RedisDB       *redis.Client
	RabbitConn    *amqp.Connection
	RabbitChannel *amqp.Channel
)
