package model

import "time"

// ContractResult is the outcome of generating one controller's contract
type ContractResult struct {
	Entity         string     // e.g., "Widget"
	ControllerPath string     // Source controller file
	OutputPath     string     // Written document
	BasePath       string     // Class-level route
	Endpoints      []Endpoint // Final endpoint set, declared first
	Document       *Document
}

// DeclaredCount returns how many endpoints came from source
func (r *ContractResult) DeclaredCount() int {
	n := 0
	for _, ep := range r.Endpoints {
		if !ep.Synthesized {
			n++
		}
	}
	return n
}

// ContractIndex collects every contract produced by one directory run
type ContractIndex struct {
	SourceRoot  string
	OutputRoot  string
	GeneratedAt time.Time
	Contracts   []*ContractResult
}

// EndpointCount returns the total number of endpoints across all contracts
func (idx *ContractIndex) EndpointCount() int {
	n := 0
	for _, c := range idx.Contracts {
		n += len(c.Endpoints)
	}
	return n
}

// SynthesizedCount returns how many endpoints the detector added
func (idx *ContractIndex) SynthesizedCount() int {
	n := 0
	for _, c := range idx.Contracts {
		n += len(c.Endpoints) - c.DeclaredCount()
	}
	return n
}
