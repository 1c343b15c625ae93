// Package env is an implementation of the env.Source interface from
// go-simpler.org that reads a .env file underneath the process environment.
package env

import (
	"os"
	"strings"

	"nkey.mleku.dev/chk"
)

// Env is a key/value map used to represent environment variables read from a
// file.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format, ie, key usually in all upper case
// no spaces and words separated by underscore. Blank lines, comments and lines
// with no '=' are skipped, and an "export " prefix is allowed so the output of
// the env command can be read back.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			continue
		}
		env[strings.TrimSpace(split[0])] = strings.Trim(
			strings.TrimSpace(split[1]), `"'`)
	}
	return
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable loader for go-simpler.org/env to enable
// .env file loading. The process environment takes precedence over the file.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	if value, ok = os.LookupEnv(key); ok {
		return
	}
	value, ok = env[key]
	return
}
