package base_service

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"strings"
	"time"
)

var GlobalLogger *zerolog.Logger
var LogFile *os.File
var LogLevel = zerolog.InfoLevel
var EnableLogFile = false

func formatLevel(i interface{}) string {
	return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
}

func CreateLog() {
	if GlobalLogger != nil {
		return
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(LogLevel)
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime, NoColor: false}
	output.FormatLevel = formatLevel
	writers := []io.Writer{output}

	if EnableLogFile {
		file, err := os.OpenFile(fmt.Sprintf("osu-api-%s.log", time.Now().Format(time.DateOnly)), os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			panic(err)
		}
		fileWriter := zerolog.ConsoleWriter{Out: file, TimeFormat: time.DateTime, NoColor: true}
		fileWriter.FormatLevel = formatLevel
		writers = append(writers, fileWriter)
		LogFile = file
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	GlobalLogger = &log.Logger
}

func CloseLog() {
	if LogFile == nil {
		return
	}
	if err := LogFile.Close(); err != nil {
		fmt.Println("Failed to close log file:", err)
	}
}

func GetLogger(module string) zerolog.Logger {
	if GlobalLogger == nil {
		CreateLog()
	}
	return GlobalLogger.With().Str("module", module).Logger()
}
