package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/logic"
)

func newTestMetrics(t *testing.T) (m *Metrics, li *logic.Interpreter, reg *prometheus.Registry) {
	t.Helper()

	eng, err := engine.NewEngine(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("%v", err)
	}

	reg = prometheus.NewRegistry()
	m, err = NewMetrics(reg)
	if err != nil {
		t.Fatalf("%v", err)
	}

	li = logic.NewInterpreter(eng)
	m.Attach(li)

	return
}

func TestMetrics_Keys(t *testing.T) {
	assert := assert.New(t)

	m, li, _ := newTestMetrics(t)

	for _, op := range []logic.OpCode{logic.OP_THREE, logic.OP_PUSH, logic.OP_FOUR, logic.OP_PLUS, logic.OP_PUSH} {
		li.KeyPressed(op)
	}

	assert.Equal(2.0, testutil.ToFloat64(m.Keys.WithLabelValues("enter")))
	assert.Equal(1.0, testutil.ToFloat64(m.Keys.WithLabelValues("+")))
	assert.Equal(4, testutil.CollectAndCount(m.Keys))
	assert.Equal(0, testutil.CollectAndCount(m.Errors))
	assert.Equal(7.0, testutil.ToFloat64(m.X))
}

func TestMetrics_Errors(t *testing.T) {
	assert := assert.New(t)

	m, li, _ := newTestMetrics(t)

	for _, op := range []logic.OpCode{logic.OP_ONE, logic.OP_PUSH, logic.OP_ZERO, logic.OP_DIVIDE, logic.OP_RESERVED_NULL, logic.OP_RESERVED_NULL} {
		li.KeyPressed(op)
	}

	assert.Equal(1.0, testutil.ToFloat64(m.Errors.WithLabelValues("Range Error")))
	assert.Equal(2.0, testutil.ToFloat64(m.Errors.WithLabelValues("Operational Error")))
	assert.Equal(2, testutil.CollectAndCount(m.Errors))
}

func TestMetrics_UnknownKeys(t *testing.T) {
	assert := assert.New(t)

	m, li, _ := newTestMetrics(t)

	for _, op := range []logic.OpCode{logic.OpCode(77), logic.OpCode(-1), logic.OpCode(12345), logic.OP_RESERVED_NULL} {
		li.KeyPressed(op)
	}

	assert.Equal(3.0, testutil.ToFloat64(m.Keys.WithLabelValues(KEY_UNKNOWN)))
	assert.Equal(1.0, testutil.ToFloat64(m.Keys.WithLabelValues("null")))
	assert.Equal(2, testutil.CollectAndCount(m.Keys))
	assert.Equal(4.0, testutil.ToFloat64(m.Errors.WithLabelValues("Operational Error")))
}

func TestMetrics_Register(t *testing.T) {
	assert := assert.New(t)

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	assert.NoError(err)

	m, err := NewMetrics(reg)
	assert.Error(err)
	assert.Nil(m)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	_, li, reg := newTestMetrics(t)

	for _, op := range []logic.OpCode{logic.OP_FIVE, logic.OP_SQUARE} {
		li.KeyPressed(op)
	}

	var out bytes.Buffer
	err := Dump(reg, &out)
	assert.NoError(err)

	expected := `rpncalc_keys_total{key="5"} 1
rpncalc_keys_total{key="sq"} 1
rpncalc_x 25
`
	assert.Equal(expected, out.String())
}
