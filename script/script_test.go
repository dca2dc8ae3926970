package script

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/logic"
)

func newTestScript(t *testing.T) (sc *Script, out *bytes.Buffer) {
	t.Helper()

	eng, err := engine.NewEngine(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("%v", err)
	}

	out = &bytes.Buffer{}
	sc = NewScript(logic.NewInterpreter(eng))
	sc.Output = out

	return
}

func TestScript_Keys(t *testing.T) {
	assert := assert.New(t)

	sc, out := newTestScript(t)

	prog := `
key(3)
key("enter")
shown = keys(4, "+")
print(shown, x())
`
	globals, err := sc.Exec("keys.star", prog)
	assert.NoError(err)
	assert.Equal(starlark.String("7"), globals["shown"])
	assert.Equal("7 7\n", out.String())
}

func TestScript_Words(t *testing.T) {
	assert := assert.New(t)

	sc, out := newTestScript(t)

	prog := `
keys("12.5 enter 2 *")
regs = registers()
print(regs["x"], regs["x0"])
keys("5 eex 12")
print(display(), x())
`
	_, err := sc.Exec("words.star", prog)
	assert.NoError(err)
	assert.Equal("25 2\n5e12 5e+12\n", out.String())
}

func TestScript_KeyCodes(t *testing.T) {
	assert := assert.New(t)

	sc, out := newTestScript(t)

	prog := `
keys(9, KEYS["enter"], 3, KEYS["/"])
print(x(), KEYS["null"])
`
	_, err := sc.Exec("codes.star", prog)
	assert.NoError(err)
	assert.Equal("3 9999\n", out.String())
}

func TestScript_Memory(t *testing.T) {
	assert := assert.New(t)

	sc, out := newTestScript(t)

	prog := `
keys("42 sto3 clx")
mem = memory()
print(mem["m3"], mem["m0"], x())
keys("rcl3")
print(x())
`
	_, err := sc.Exec("memory.star", prog)
	assert.NoError(err)
	assert.Equal("42 0 0\n42\n", out.String())
}

func TestScript_LastError(t *testing.T) {
	assert := assert.New(t)

	sc, out := newTestScript(t)

	prog := `
print(last_error())
shown = keys("1 enter 0 /")
err = last_error()
print(shown, err["type"])
keys("2")
print(last_error())
`
	_, err := sc.Exec("error.star", prog)
	assert.NoError(err)
	assert.Equal("None\nERROR Range Error\nNone\n", out.String())
}

func TestScript_Fail(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newTestScript(t)

	prog := `
keys("2 enter 2 +")
if x() != "5":
    fail("expected 5, got", x())
`
	_, err := sc.Exec("fail.star", prog)

	var evalErr *starlark.EvalError
	assert.True(errors.As(err, &evalErr))
}

func TestScript_Control(t *testing.T) {
	assert := assert.New(t)

	sc, out := newTestScript(t)

	prog := `
total = 0
for n in [1, 2, 3]:
    keys(n, "enter")
if x() == "3":
    total = x()
print(total)
`
	globals, err := sc.Exec("control.star", prog)
	assert.NoError(err)
	assert.Equal(starlark.String("3"), globals["total"])
	assert.Equal("3
", out.String())
}

func TestScript_BadKey(t *testing.T) {
	table := [...]struct {
		name string
		prog string
	}{
		{"name", `key("frobnicate")`},
		{"type", `key(1.5)`},
		{"arity", `key()`},
		{"kwargs", `keys(a=1)`},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			sc, _ := newTestScript(t)
			_, err := sc.Exec("bad.star", entry.prog)
			assert.Error(err)
		})
	}
}

func TestScript_Unknown(t *testing.T) {
	assert := assert.New(t)

	sc, _ := newTestScript(t)
	_, err := sc.Exec("bad.star", `key("frobnicate")`)

	assert.True(errors.Is(err, logic.ErrKeyUnknown))
}
