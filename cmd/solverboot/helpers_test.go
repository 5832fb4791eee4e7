package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

const selfPath = "/usr/local/bin/solverboot"

// Smoke script exit codes: 3 means the binding did not import, 4 means it raised.
const (
	smokeOK      = 0
	smokeMissing = 3
	smokeBroken  = 4
)

type hostProbe struct {
	platform  model.PlatformInfo
	privilege model.PrivilegeContext
}

func (p hostProbe) Platform() model.PlatformInfo {
	return p.platform
}

func (p hostProbe) Privilege() model.PrivilegeContext {
	return p.privilege
}

var (
	debianRoot = hostProbe{
		platform:  model.PlatformInfo{OSFamily: model.OSLinux, GOOS: "linux", HasAptTooling: true},
		privilege: model.PrivilegeContext{IsElevated: true},
	}
	debianUser = hostProbe{
		platform:  model.PlatformInfo{OSFamily: model.OSLinux, GOOS: "linux", HasAptTooling: true},
		privilege: model.PrivilegeContext{EUID: 1000},
	}
	macOS = hostProbe{platform: model.PlatformInfo{OSFamily: model.OSOther, GOOS: "darwin"}}
)

// fakeHost answers the smoke test from verifyCodes in order, repeating the last
// one, and every other command from the embedded Fake's scripts.
type fakeHost struct {
	*execrunner.Fake
	verifyCodes []int
	verifyCalls int
}

func newFakeHost(verifyCodes ...int) *fakeHost {
	h := &fakeHost{Fake: execrunner.NewFake(), verifyCodes: verifyCodes}
	h.Handler = h.handle
	return h
}

func (h *fakeHost) handle(argv []string) (execrunner.Output, model.CommandResult) {
	if isSmokeTest(argv) {
		code := h.verifyCodes[min(h.verifyCalls, len(h.verifyCodes)-1)]
		h.verifyCalls++
		var out execrunner.Output
		if code == smokeBroken {
			out.Stderr = "Traceback (most recent call last):\nRuntimeError: libdreal.so.4: cannot open shared object file"
		}
		return out, model.NewCommandResult(code)
	}

	key := strings.Join(argv, " ")
	return h.Outputs[key], model.NewCommandResult(h.ExitCodes[key])
}

func (h *fakeHost) commandLines() []string {
	var lines []string
	for _, call := range h.Calls {
		if !isSmokeTest(call) {
			lines = append(lines, strings.Join(call, " "))
		}
	}
	return lines
}

func isSmokeTest(argv []string) bool {
	return len(argv) == 3 && argv[1] == "-c" && strings.Contains(argv[2], "binding.sin(x)")
}

func execute(t *testing.T, host *fakeHost, probe hostProbe, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), host, probe, cfg, args...)
}

func executeContext(t *testing.T, ctx context.Context, host *fakeHost, probe hostProbe, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}

	original := newEnvironment
	t.Cleanup(func() { newEnvironment = original })
	newEnvironment = func(cmd *cobra.Command, flags *rootFlags) (*environment, error) {
		return &environment{
			cfg:      cfg,
			log:      logger.Nop(),
			probe:    probe,
			runnerIn: func(string) commandRunner { return host },
			self:     []string{selfPath},
			args:     args,
		}, nil
	}

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return buf.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *bootErrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
