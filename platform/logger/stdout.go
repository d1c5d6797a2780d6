package logger

import (
	"io"
	"os"
)

var output io.Writer = os.Stdout

func stdout() io.Writer { return output }
