package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/snipsync/snipsync/internal/iocli"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capturingIO collects everything a command printed into one string.
type capturingIO struct {
	mock *iocli.IOMock
	out  strings.Builder
}

func newCapturingIO() *capturingIO {
	c := &capturingIO{}
	c.mock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			c.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			c.out.WriteString(fmt.Sprintf(format, a...))
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return "", nil
		},
	}
	return c
}

func (c *capturingIO) String() string {
	return c.out.String()
}
