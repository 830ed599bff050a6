// Package config loads optional run configuration files written in CUE.
//
//	limit:   1000
//	verbose: false
//	quiet:   true
//	timeout: "10s"
package config

import (
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ezrec/turing/translate"
)

var f = translate.From

// Schema every configuration file is validated against.
const Schema = `
limit?:   int & >=0
verbose?: bool
quiet?:   bool
timeout?: string
`

// Config is a run configuration.
type Config struct {
	Limit   int           // Step limit, 0 for unbounded.
	Verbose bool          // Verbose logging.
	Quiet   bool          // Suppress per-step output.
	Timeout time.Duration // Wall clock limit, 0 for none.
}

// file mirrors the CUE fields.
type file struct {
	Limit   int    `json:"limit"`
	Verbose bool   `json:"verbose"`
	Quiet   bool   `json:"quiet"`
	Timeout string `json:"timeout"`
}

// ErrConfig locates an invalid configuration.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Load reads and validates a configuration file.
func Load(path string) (cfg Config, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, content)
}

// Parse validates CUE source against Schema and decodes it.
func Parse(path string, content []byte) (cfg Config, err error) {
	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + Schema + "})")
	if err = schema.Err(); err != nil {
		return
	}

	value := ctx.CompileBytes(content, cue.Filename(path))
	if err = value.Err(); err != nil {
		return
	}

	unified := schema.Unify(value)
	if err = unified.Validate(cue.Concrete(true)); err != nil {
		return
	}

	var raw file
	if err = unified.Decode(&raw); err != nil {
		return
	}

	cfg.Limit = raw.Limit
	cfg.Verbose = raw.Verbose
	cfg.Quiet = raw.Quiet
	if len(raw.Timeout) > 0 {
		cfg.Timeout, err = time.ParseDuration(raw.Timeout)
		if err != nil {
			return
		}
	}

	return
}
