package main

import (
	"math/rand"
	"strconv"
)

var providers = []string{"aws", "gcp", "azure"}

// targets spreads requests over the cached read routes of the proxy
type targets struct {
	baseURL   string
	factorIDs int
}

func newTargets(baseURL string, factorIDs int) *targets {
	return &targets{baseURL: baseURL, factorIDs: max(factorIDs, 1)}
}

func (t *targets) next() string {
	if rand.Intn(2) == 0 {
		return t.baseURL + "/api/v1/compute/" + providers[rand.Intn(len(providers))] + "/regions"
	}
	return t.baseURL + "/api/v1/emission-factors/factor-" + strconv.Itoa(rand.Intn(t.factorIDs))
}
