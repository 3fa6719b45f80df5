package parse

import "github.com/google/shlex"

// Split tokenizes a command-line string using shell-like quoting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
