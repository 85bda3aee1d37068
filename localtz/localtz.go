// Package localtz discovers the host's current UTC offset.
//
// The offset is obtained by invoking the date(1) program and parsing its
// output, so it reflects whatever the host considers local time at the moment
// of the call. A failing or missing date program surfaces as a single opaque
// error; this package never retries or interprets the failure.
package localtz

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cfal/go-epoch/tzoffset"
)

// CommandRunner runs a program and returns its standard output. It exists so
// tests can substitute canned output for the real date program.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// DefaultClient is the client used by the top-level System function.
var DefaultClient = &Client{}

// Client queries the host for its current UTC offset.
// The zero value is ready to use and invokes date(1) via os/exec.
type Client struct {
	// Runner overrides how commands are executed. If nil, commands are run
	// with exec.CommandContext.
	Runner CommandRunner
}

func (c *Client) runner() CommandRunner {
	if c.Runner == nil {
		return execRunner
	}
	return c.Runner
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// System returns the host's current UTC offset using the DefaultClient.
func System(ctx context.Context) (tzoffset.Offset, error) {
	return DefaultClient.System(ctx)
}

// System returns the host's current UTC offset. The display name is the
// host's zone abbreviation when one is reported and the raw offset string
// otherwise.
func (c *Client) System(ctx context.Context) (tzoffset.Offset, error) {
	out, err := c.runner()(ctx, "date", "+%z")
	if err != nil {
		return tzoffset.Offset{}, fmt.Errorf("query local offset: %w", err)
	}
	raw := strings.TrimSpace(string(out))

	name := raw
	if out, err := c.runner()(ctx, "date", "+%Z"); err == nil {
		if abbr := strings.TrimSpace(string(out)); abbr != "" {
			name = abbr
		}
	}

	off, err := tzoffset.FromStringNamed(raw, name)
	if err != nil {
		return tzoffset.Offset{}, fmt.Errorf("parse local offset %q: %w", raw, err)
	}
	return off, nil
}
