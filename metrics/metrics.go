// Package metrics counts calculator keys and errors with Prometheus collectors.
package metrics

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/logic"
)

const NAMESPACE = "rpncalc"

// KEY_UNKNOWN labels every undefined key code.
const KEY_UNKNOWN = "unknown"

// Metrics are the calculator collectors.
type Metrics struct {
	Keys   *prometheus.CounterVec // Keys pressed, by key name.
	Errors *prometheus.CounterVec // Errors reported, by error type.
	X      prometheus.Gauge       // Value of the x register.
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (m *Metrics, err error) {
	m = &Metrics{
		Keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "keys_total",
			Help:      "Keys delivered to the interpreter, by key name.",
		}, []string{"key"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: NAMESPACE,
			Name:      "errors_total",
			Help:      "Errors reported by the interpreter, by error type.",
		}, []string{"type"}),
		X: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: NAMESPACE,
			Name:      "x",
			Help:      "Value of the x register, as last signalled.",
		}),
	}

	for _, collector := range []prometheus.Collector{m.Keys, m.Errors, m.X} {
		err = reg.Register(collector)
		if err != nil {
			m = nil
			return
		}
	}

	return
}

// Attach subscribes the collectors to an interpreter.
func (m *Metrics) Attach(li *logic.Interpreter) {
	li.OnKey(func(op logic.OpCode) {
		key := KEY_UNKNOWN
		if op.IsValid() {
			key = op.String()
		}
		m.Keys.WithLabelValues(key).Inc()
	})
	li.OnError(func(record logic.Error) {
		m.Errors.WithLabelValues(record.Type).Inc()
	})
	li.OnRegisters(func(regs engine.Registers) {
		x, err := strconv.ParseFloat(regs.X, 64)
		if err == nil {
			m.X.Set(x)
		}
	})
}

func value(metric *dto.Metric) float64 {
	switch {
	case metric.GetCounter() != nil:
		return metric.GetCounter().GetValue()
	case metric.GetGauge() != nil:
		return metric.GetGauge().GetValue()
	case metric.GetUntyped() != nil:
		return metric.GetUntyped().GetValue()
	}
	return 0
}

func labels(metric *dto.Metric) string {
	pairs := []string{}
	for _, label := range metric.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%v=%q", label.GetName(), label.GetValue()))
	}
	slices.Sort(pairs)

	if len(pairs) == 0 {
		return ""
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// Dump writes one line per gathered sample, as "name{labels} value".
func Dump(g prometheus.Gatherer, w io.Writer) (err error) {
	families, err := g.Gather()
	if err != nil {
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			_, err = fmt.Fprintf(w, "%v%v %v\n", family.GetName(), labels(metric), value(metric))
			if err != nil {
				return
			}
		}
	}

	return
}
