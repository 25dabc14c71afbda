package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	SetLoggerConsole(!isatty.IsTerminal(os.Stdout.Fd()))
}

var ColourDisabled bool

const (
	colorRed = iota + 31
	colorGreen
	colorYellow
	_
	colorMagenta

	colorBold     = 1
	colorDarkGray = 90
)

// V formats with the default verb without letting the argument escape through a variadic.
func V[T any](copyThatEscapes T) string {
	return fmt.Sprintf("%v", copyThatEscapes)
}

func colorize(s interface{}, c int) string {
	if ColourDisabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// SetLevel 0 is info, 1 is debug, anything higher is trace.
func SetLevel(level int) {
	switch level {
	case 0:
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	case 1:
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Logger = log.Logger.Level(zerolog.TraceLevel)
	}
}

func SetLoggerConsole(noColour bool) {
	log.Logger = ConsoleLogger(os.Stdout, noColour)
}

// ConsoleLogger builds the console format used by the tools, writing to out.
func ConsoleLogger(out io.Writer, noColour bool) zerolog.Logger {
	ColourDisabled = noColour
	zerolog.CallerMarshalFunc = callerMarshal

	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColour}
	cw.FormatLevel = consoleFormatLevel
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}
	return zerolog.New(cw).With().Timestamp().Caller().Logger()
}

func callerMarshal(pc uintptr, file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	file = fmt.Sprintf("%15s.%-4s", short, strconv.Itoa(line))
	if len(file) > 20 {
		file = ".." + file[len(file)-18:]
	}
	return colorize(file, colorDarkGray)
}

func consoleFormatLevel(i any) string {
	ll, ok := i.(string)
	if !ok {
		return colorize("| ??? |", colorBold)
	}
	switch ll {
	case zerolog.LevelTraceValue:
		return colorize("| TRACE |", colorMagenta)
	case zerolog.LevelDebugValue:
		return colorize("| DEBUG |", colorYellow)
	case zerolog.LevelInfoValue:
		return colorize("| INFO  |", colorGreen)
	case zerolog.LevelWarnValue:
		return colorize("| WARN  |", colorRed)
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return colorize(colorize(fmt.Sprintf("| %-5s |", upper(ll)), colorRed), colorBold)
	}
	return colorize(ll, colorBold)
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}

func MemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Debug().Msg("(MiB): Alloc: " + V(m.Alloc/1024/1024) + " Sys: " + V(m.Sys/1024/1024) +
		" HeapInuse: " + V(m.HeapInuse/1024/1024) +
		". (#): NumGC: " + V(m.NumGC))
}
