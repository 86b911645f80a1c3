package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config func to get env value
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, reading process environment")
		}
	})
	return os.Getenv(key)
}

// String returns the value of key or def when it is unset.
func String(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func Int(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// Minutes reads an integer number of minutes.
func Minutes(key string, def int) time.Duration {
	return time.Duration(Int(key, def)) * time.Minute
}
