package main

import (
	"agentcrm/internal/loganalysis"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	var input io.Reader
	if len(args) > 0 && args[0] != "" {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	} else {
		info, err := stdin.Stat()
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeCharDevice != 0 {
			return errors.New("provide a log file path or pipe log contents via stdin")
		}
		input = stdin
	}

	summary, err := loganalysis.Analyze(input)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	return loganalysis.WriteReport(stdout, summary)
}
