package config

// Config describes the solver being bootstrapped and the example gated on it.
type Config struct {
	// Python is the interpreter used for pip, the smoke test and the example.
	Python         string `yaml:"python" env:"SOLVERBOOT_PYTHON" validate:"required"`
	Binding        string `yaml:"binding" env:"SOLVERBOOT_BINDING" validate:"required,pyident"`
	SystemPackage  string `yaml:"system_package" env:"SOLVERBOOT_SYSTEM_PACKAGE" validate:"required,debpkg"`
	SupportPackage string `yaml:"support_package" validate:"required,debpkg"`
	Repository     string `yaml:"repository" env:"SOLVERBOOT_REPOSITORY" validate:"required,ppa"`
	ManualURL      string `yaml:"manual_url" validate:"required,url"`

	Smoke   SmokeTest `yaml:"smoke"`
	Example Example   `yaml:"example"`
}

// SmokeTest names the symbolic constructor and unary operation exercised by verification.
type SmokeTest struct {
	Variable string `yaml:"variable" validate:"required,pyident"`
	UnaryOp  string `yaml:"unary_op" validate:"required,pyident"`
}

// Example is the downstream workflow run once the solver is usable.
type Example struct {
	Module    string   `yaml:"module" validate:"required,pymodule"`
	Entry     string   `yaml:"entry" validate:"required,pyident"`
	WorkDir   string   `yaml:"workdir" env:"SOLVERBOOT_EXAMPLE_WORKDIR"`
	Artifacts []string `yaml:"artifacts" validate:"dive,required"`
}

// Default returns the built-in dReal target.
func Default() *Config {
	return &Config{
		Python:         "python3",
		Binding:        "dreal",
		SystemPackage:  "libdreal-dev",
		SupportPackage: "software-properties-common",
		Repository:     "ppa:dreal/dreal",
		ManualURL:      "https://github.com/dreal/dreal4",
		Smoke: SmokeTest{
			Variable: "Variable",
			UnaryOp:  "sin",
		},
		Example: Example{
			Module:  "control_lyapunov.examples.van_der_pol_example",
			Entry:   "main",
			WorkDir: ".",
			Artifacts: []string{
				"loss_history.png",
				"simulation_results.png",
				"phase_portrait.png",
			},
		},
	}
}
