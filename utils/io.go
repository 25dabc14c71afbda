package utils

import (
	"os"

	"github.com/rs/zerolog/log"
)

func OpenFile(path string) (file *os.File) {
	file, err := os.Open(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to open file: " + path)
	}
	return file
}

func CreateFile(path string) (file *os.File) {
	file, err := os.Create(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to create file: " + path)
	}
	return file
}
