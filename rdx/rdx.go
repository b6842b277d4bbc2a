package rdx

import (
	"log"
	"os"

	"inkwell/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// RdxSet stores a plain key/value pair.
func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

// RdxGet fetches a plain key; returns "" when absent.
func RdxGet(key string) string {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// RdxHset stores a field in a hash.
func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

// RdxHget fetches a field from a hash.
func RdxHget(hash, field string) (string, error) {
	return Conn.HGet(globals.Ctx, hash, field).Result()
}

// RdxHdel removes a field from a hash.
func RdxHdel(hash, field string) error {
	err := Conn.HDel(globals.Ctx, hash, field).Err()
	if err != nil {
		log.Printf("Redis HDel %s/%s failed: %v", hash, field, err)
	}
	return err
}
