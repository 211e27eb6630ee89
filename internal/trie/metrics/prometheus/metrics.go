// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package prometheus provides trie metrics exported with prometheus.
package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pmtrie"

// Metrics holds the prometheus collectors for the trie metrics.
type Metrics struct {
	nodesCounter      prometheus.Counter
	operationsCounter *prometheus.CounterVec
}

// New creates and registers the trie metrics on the registerer given.
// Collectors already registered are reused.
func New(registerer prometheus.Registerer) (metrics *Metrics, err error) {
	metrics = &Metrics{
		nodesCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trie",
			Name:      "nodes_written_total",
			Help:      "total number of nodes written to the node store",
		}),
		operationsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trie",
			Name:      "operations_total",
			Help:      "total number of trie operations by operation name",
		}, []string{"operation"}),
	}

	err = metrics.register(registerer)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func (m *Metrics) register(registerer prometheus.Registerer) (err error) {
	err = registerer.Register(m.nodesCounter)
	if err != nil {
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &alreadyRegistered) {
			return fmt.Errorf("cannot register nodes counter: %w", err)
		}
		m.nodesCounter = alreadyRegistered.ExistingCollector.(prometheus.Counter)
	}

	err = registerer.Register(m.operationsCounter)
	if err != nil {
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if !errors.As(err, &alreadyRegistered) {
			return fmt.Errorf("cannot register operations counter: %w", err)
		}
		m.operationsCounter = alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
	}

	return nil
}

// NodesAdd adds n to the count of nodes written.
func (m *Metrics) NodesAdd(n uint32) {
	m.nodesCounter.Add(float64(n))
}

// OperationInc increments the count of the operation given.
func (m *Metrics) OperationInc(operation string) {
	m.operationsCounter.WithLabelValues(operation).Inc()
}
