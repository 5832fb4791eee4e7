package execrunner

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// Fake is a scripted Runner and Capturer that records every invocation
// instead of executing anything. Commands succeed unless scripted otherwise.
type Fake struct {
	Calls [][]string

	// ExitCodes is keyed by the space-joined argv.
	ExitCodes map[string]int
	Outputs   map[string]Output
	// Handler, when set, overrides the maps above.
	Handler func(argv []string) (Output, model.CommandResult)
}

var (
	_ Runner   = (*Fake)(nil)
	_ Capturer = (*Fake)(nil)
)

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		ExitCodes: make(map[string]int),
		Outputs:   make(map[string]Output),
	}
}

// FailOn scripts argv to exit with code.
func (f *Fake) FailOn(code int, argv ...string) *Fake {
	f.ExitCodes[strings.Join(argv, " ")] = code
	return f
}

// Run implements Runner.
func (f *Fake) Run(ctx context.Context, argv []string) model.CommandResult {
	_, result := f.Capture(ctx, argv)
	return result
}

// Capture implements Capturer.
func (f *Fake) Capture(_ context.Context, argv []string) (Output, model.CommandResult) {
	f.Calls = append(f.Calls, append([]string(nil), argv...))

	if f.Handler != nil {
		return f.Handler(argv)
	}

	key := strings.Join(argv, " ")
	code := f.ExitCodes[key]
	return f.Outputs[key], model.NewCommandResult(code)
}

// CallLines returns every recorded invocation as a space-joined string.
func (f *Fake) CallLines() []string {
	lines := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		lines = append(lines, strings.Join(call, " "))
	}
	return lines
}
