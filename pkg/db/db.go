package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/codingtracker/backend/pkg/config"
)

var DB *gorm.DB
var Rdb *redis.Client

func Init(cfg *config.Config) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	redisDBConnection(cfg)
}

func redisDBConnection(cfg *config.Config) {
	ctx := context.Background()

	var tlsConfig *tls.Config
	if cfg.RedisTLS {
		tlsConfig = &tls.Config{}
	}
	dbNum, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("invalid REDIS_DB value %q, using 0", cfg.RedisDB)
		dbNum = 0
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:      cfg.RedisAddr,
		Username:  cfg.RedisUsername,
		Password:  cfg.RedisPassword,
		DB:        dbNum,
		TLSConfig: tlsConfig,
	})

	pong, err := Rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	fmt.Println("Redis connected:", pong)
}
