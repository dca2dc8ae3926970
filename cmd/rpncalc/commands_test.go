package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, stdin string, args ...string) (out string, err error) {
	t.Helper()

	var buf, errBuf bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&buf)
	cmd.SetErr(&errBuf)

	err = cmd.Execute()
	out = buf.String()

	return
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("%v", err)
	}

	return path
}

func TestRun_Args(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "", "run", "3", "enter", "4", "+")
	assert.NoError(err)
	assert.Equal("3\t3\nenter\t3\n4\t4\n+\t7\n", out)
}

func TestRun_Stdin(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "2 enter 3 pow # eight\n", "run", "--registers")
	assert.NoError(err)
	assert.True(strings.HasPrefix(out, "2\t2\nenter\t2\n3\t3\npow\t8\n"), out)
	assert.Contains(out, "  x: 8\n")
	assert.Contains(out, " x0: 3\n")
}

func TestRun_Metrics(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "", "run", "--metrics", "1", "enter", "0", "/")
	assert.NoError(err)
	assert.Contains(out, "/\tERROR\tRange Error: ")
	assert.Contains(out, `rpncalc_errors_total{type="Range Error"} 1`)
	assert.Contains(out, `rpncalc_keys_total{key="enter"} 1`)
}

func TestRun_BadWord(t *testing.T) {
	assert := assert.New(t)

	_, err := execute(t, "", "run", "1", "frob")
	assert.Error(err)
}

func TestRun_Config(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "narrow.yaml", "precision: 4\n")

	out, err := execute(t, "", "--config", path, "run", "2", "sqrt")
	assert.NoError(err)
	assert.Equal("2\t2\nsqrt\t1.414\n", out)
}

func TestConfig(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "", "config")
	assert.NoError(err)
	assert.Contains(out, "precision: 8\n")
	assert.Contains(out, "exponent_digits: 2\n")
	assert.Contains(out, "max_exponent: 99\n")

	path := writeFile(t, "bad.yaml", "precision: 0\n")
	_, err = execute(t, "", "--config", path, "config")
	assert.Error(err)
}

func TestScript(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "add.star", `
keys("3 enter 4 +")
print("x =", x())
`)

	out, err := execute(t, "", "script", path)
	assert.NoError(err)
	assert.Equal("x = 7\n", out)

	path = writeFile(t, "fail.star", `fail("nope")`)
	_, err = execute(t, "", "script", path)
	assert.Error(err)
	assert.Contains(err.Error(), "nope")
}

func TestKeys(t *testing.T) {
	assert := assert.New(t)

	out, err := execute(t, "", "keys")
	assert.NoError(err)
	assert.Contains(out, "  31 -\n")
	assert.Contains(out, "9999 null\n")
}
