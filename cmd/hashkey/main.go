// Command hashkey prints the bcrypt hash of a device key for auth.devices
// in configs/config.yml.
package main

import (
	"fmt"
	"os"

	"env_advisor/internal/logger"
	"env_advisor/internal/service"
)

func main() {
	log := logger.Get(logger.InfoLevel, logger.ConsoleFormat)
	if len(os.Args) != 2 {
		log.Fatalw("usage: hashkey <device-key>")
	}

	hash, err := service.HashKey(os.Args[1])
	if err != nil {
		log.Fatalw("hash_key_failed", "err", err)
	}
	fmt.Println(hash)
}
