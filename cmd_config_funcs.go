package argman

import "io"

// ConfigureCmdFunc configures a Cmd at construction time.
type ConfigureCmdFunc func(cmd *Cmd)

// WithProgram sets the program name used in usage and help output. Defaults
// to os.Args[0].
func WithProgram(program string) ConfigureCmdFunc {
	return func(cmd *Cmd) {
		cmd.program = program
	}
}

// WithExitOnError controls the failure policy. When true (the default) a
// parse failure prints the message and help and exits the process with a
// non-zero status; when false the failure is returned as a *ParseError.
func WithExitOnError(exitOnErr bool) ConfigureCmdFunc {
	return func(cmd *Cmd) {
		cmd.exitOnErr = exitOnErr
	}
}

// WithErrorMessages overrides individual error message templates by key.
// Unlisted keys keep their default template.
func WithErrorMessages(overrides map[string]string) ConfigureCmdFunc {
	return func(cmd *Cmd) {
		merged := make(map[string]string, len(defaultErrors)+len(overrides))
		for key, tmpl := range cmd.errorMessages {
			merged[key] = tmpl
		}
		for key, tmpl := range overrides {
			merged[key] = tmpl
		}
		cmd.errorMessages = merged
	}
}

// WithStdout redirects help and serialization output. Defaults to os.Stdout.
func WithStdout(w io.Writer) ConfigureCmdFunc {
	return func(cmd *Cmd) {
		cmd.stdout = w
	}
}

// WithStderr redirects failure messages. Defaults to os.Stderr.
func WithStderr(w io.Writer) ConfigureCmdFunc {
	return func(cmd *Cmd) {
		cmd.stderr = w
	}
}
