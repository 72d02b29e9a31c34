package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	AppPort         string
	AppEnv          string
	SecretKey       string
	RestockOnCancel bool
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		SecretKey:       os.Getenv("SECRET_KEY"),
		RestockOnCancel: parseBool(os.Getenv("RESTOCK_ON_CANCEL")),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}
