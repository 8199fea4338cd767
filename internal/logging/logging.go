package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	logfile *os.File
	verbose bool
	stdout  io.Writer = os.Stdout
	stderr  io.Writer = os.Stderr
)

// Init mirrors every message into <user config dir>/mantw/logs/mantw.log.
// Failing to open the log file is not fatal; messages still reach the terminal.
func Init() {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	p := filepath.Join(dir, "mantw", "logs")
	_ = os.MkdirAll(p, 0o755)
	f, err := os.OpenFile(filepath.Join(p, "mantw.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	logfile = f
	log.SetOutput(f)
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
}

// SetOutput redirects terminal output. Used by tests.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

func color(code, s string) string { return "\x1b[" + code + "m" + s + "\x1b[0m" }

func Success(msg string) {
	fmt.Fprintln(stdout, color("32", msg))
	log.Println(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(stderr, color("31", msg))
	log.Println("[ERROR] " + msg)
}

func Gray(msg string) {
	fmt.Fprintln(stdout, color("90", msg))
	log.Println(msg)
}

// SetVerbose toggles verbose output to stdout.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(stderr, color("90", msg))
	log.Println("[DEBUG] " + msg)
}
