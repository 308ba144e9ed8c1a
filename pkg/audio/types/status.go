package types

import (
	"strings"
	"time"
)

// StatusFlags are the advisory conditions a driver reports together with a block of samples.
type StatusFlags uint

const (
	StatusInputUnderflow = StatusFlags(1 << iota)
	StatusInputOverflow
	StatusOutputUnderflow
	StatusOutputOverflow
	StatusPrimingOutput
)

var statusFlagNames = []struct {
	Flag StatusFlags
	Name string
}{
	{StatusInputUnderflow, "input_underflow"},
	{StatusInputOverflow, "input_overflow"},
	{StatusOutputUnderflow, "output_underflow"},
	{StatusOutputOverflow, "output_overflow"},
	{StatusPrimingOutput, "priming_output"},
}

func (f StatusFlags) Has(flag StatusFlags) bool {
	return f&flag != 0
}

// Names returns the names of all the flags set, in a stable order.
func (f StatusFlags) Names() []string {
	var result []string
	for _, item := range statusFlagNames {
		if f.Has(item.Flag) {
			result = append(result, item.Name)
		}
	}
	return result
}

func (f StatusFlags) String() string {
	if f == 0 {
		return "ok"
	}
	return strings.Join(f.Names(), "|")
}

// CallbackInfo carries the driver timing information of a block.
type CallbackInfo struct {
	InputBufferADCTime time.Duration
	CurrentTime        time.Duration
}
