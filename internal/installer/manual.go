package installer

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
)

// ManualSystemSteps lists the system commands an operator can run by hand.
func ManualSystemSteps(cfg *config.Config) []string {
	s := &SystemDeps{cfg: cfg}
	steps := make([]string, 0, 5)
	for _, argv := range s.Commands() {
		steps = append(steps, "sudo "+strings.Join(argv, " "))
	}
	return steps
}

// ManualBindingStep is the pip command an operator can run by hand.
func ManualBindingStep(cfg *config.Config) string {
	return fmt.Sprintf("pip install %s", cfg.Binding)
}

// ManualSteps is the full by-hand procedure: system steps followed by pip.
func ManualSteps(cfg *config.Config) []string {
	return append(ManualSystemSteps(cfg), ManualBindingStep(cfg))
}

// UsageSnippet shows how to use the binding once it works.
func UsageSnippet(cfg *config.Config) []string {
	return []string{
		fmt.Sprintf("import %s", cfg.Binding),
		fmt.Sprintf("x = %s.%s('x')", cfg.Binding, cfg.Smoke.Variable),
		fmt.Sprintf("print(%s.%s(x))", cfg.Binding, cfg.Smoke.UnaryOp),
	}
}
