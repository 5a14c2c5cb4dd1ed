package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) List(context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Add(context.Context) error  { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) New(context.Context) error  { f.calls = append(f.calls, "new"); return nil }
func (f *fakeExec) Edit(_ context.Context, id string) error {
	f.calls = append(f.calls, "edit "+id)
	return nil
}
func (f *fakeExec) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return nil
}
func (f *fakeExec) Show(_ context.Context, id string) error {
	f.calls = append(f.calls, "show "+id)
	return nil
}

func (f *fakeExec) Namespaces(context.Context) error {
	f.calls = append(f.calls, "namespaces")
	return nil
}
func (f *fakeExec) Reset(context.Context) error { f.calls = append(f.calls, "reset"); return nil }
func (f *fakeExec) Wipe(context.Context) error  { f.calls = append(f.calls, "wipe"); return nil }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"l",
		"list",
		"add",
		"new",
		"edit a1",
		"show a1 extra",
		"delete b2",
		"ns",
		"namespaces",
		"reset",
		"wipe",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, []string{"list", "list", "add", "new", "edit a1", "show a1", "delete b2", "namespaces", "namespaces", "reset", "wipe"}, exec.calls)
	assert.Contains(t, out.String(), "Available commands")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("edit\nshow\ndelete\nquit\n")), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Usage: edit <id>")
	assert.Contains(t, out.String(), "Usage: show <id>")
	assert.Contains(t, out.String(), "Usage: delete <id>")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("list")), &out)

	assert.Equal(t, []string{"list"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}
