package logger

import (
	"log"
	"os"
)

var (
	// InfoLogger oddiy holatlar uchun
	InfoLogger *log.Logger
	// ErrorLogger xatolar uchun
	ErrorLogger *log.Logger
)

// Init loggerlarni sozlash
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
