package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	BaseURL       string
	DatabaseDSN   string
	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string
	PublicKeyPath string
	SMSURL        string
	EmailURL      string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:    getenv("SERVER_PORT", ":3000"),
		BaseURL:       getenv("BASE_URL", "*"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "passenger.notifications"),
		KafkaGroupID:  getenv("KAFKA_GROUP_ID", "taxipass-notifier"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
		PublicKeyPath: getenv("PUBLIC_KEY_PATH", "public_key.pem"),
		SMSURL:        getenv("SMS_URL", "http://167.172.57.163:7048/api/me/message/"),
		EmailURL:      getenv("EMAIL_URL", "http://167.172.57.163:7049/api/me/mail/"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
