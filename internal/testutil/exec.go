package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/oishell/internal/cmdexec"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error
}

// FakeCommander is a scripted cmdexec.Commander for doctor and cli tests.
// Responses are keyed by the space-joined command line, e.g. "zsh -n -c".
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "interpreter --version", "bash -n -c")
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response

	// Paths overrides LookPath results. An empty value marks the binary as missing;
	// names not in the map resolve to /usr/bin/<name>.
	Paths map[string]string
}

var _ cmdexec.Commander = (*FakeCommander)(nil)

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
		Paths:     make(map[string]string),
	}
}

// Register scripts the response for command lines starting with key.
func (c *FakeCommander) Register(key, output string, err error) {
	c.Responses[key] = Response{Output: []byte(output), Err: err}
}

// Run records the invocation and returns the best matching response:
// an exact key, then the longest registered prefix, then DefaultResponse.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	c.Calls = append(c.Calls, line)

	if resp, ok := c.match(line); ok {
		return resp.Output, resp.Err
	}
	return nil, fmt.Errorf("FakeCommander: no response registered for %q", line)
}

func (c *FakeCommander) match(line string) (Response, bool) {
	if resp, ok := c.Responses[line]; ok {
		return resp, true
	}
	best, found := "", false
	for key := range c.Responses {
		if strings.HasPrefix(line, key) && (!found || len(key) > len(best)) {
			best, found = key, true
		}
	}
	if found {
		return c.Responses[best], true
	}
	if c.DefaultResponse != nil {
		return *c.DefaultResponse, true
	}
	return Response{}, false
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// LookPath resolves name using Paths.
func (c *FakeCommander) LookPath(name string) (string, error) {
	path, ok := c.Paths[name]
	if !ok {
		return "/usr/bin/" + name, nil
	}
	if path == "" {
		return "", fmt.Errorf("FakeCommander: %q not found in PATH", name)
	}
	return path, nil
}
