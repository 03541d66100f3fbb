package model

type SetLabelParams struct {
	Label string `json:"Label"`
}

// SetCurrentNodeParams selects a node by Key, or by Addr when Key is empty.
type SetCurrentNodeParams struct {
	Key  string `json:"Key"`
	Addr string `json:"Addr"`
}

type SearchServicesParams struct {
	Key          string `json:"Key"`
	Pages        int    `json:"Pages"`
	Limit        int    `json:"Limit"`
	DiscoveryKey string `json:"DiscoveryKey"`
}

type SetNodeConfigParams struct {
	Values map[string]string `json:"Values"`
}
