// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	send              prometheus.Counter
	mint              prometheus.Counter
	burn              prometheus.Counter
	authorizeOperator prometheus.Counter
	revokeOperator    prometheus.Counter
	operatorSend      prometheus.Counter
	operatorBurn      prometheus.Counter
}

func newMetrics(r *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		send: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "send",
			Help:      "number of committed sends",
		}),
		mint: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "mint",
			Help:      "number of committed mints",
		}),
		burn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "burn",
			Help:      "number of committed burns",
		}),
		authorizeOperator: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "authorize_operator",
			Help:      "number of committed operator grants",
		}),
		revokeOperator: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "revoke_operator",
			Help:      "number of committed operator revocations",
		}),
		operatorSend: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "operator_send",
			Help:      "number of committed operator sends",
		}),
		operatorBurn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "operations",
			Name:      "operator_burn",
			Help:      "number of committed operator burns",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.send),
		r.Register(m.mint),
		r.Register(m.burn),
		r.Register(m.authorizeOperator),
		r.Register(m.revokeOperator),
		r.Register(m.operatorSend),
		r.Register(m.operatorBurn),
	)
	return m, errs.Err
}
