package model

import "encoding/json"

type Node struct {
	Key         string `json:"Key"`
	Addr        string `json:"Addr"`
	Type        string `json:"Type,omitempty"`
	Label       string `json:"Label,omitempty"`
	SendBytes   uint64 `json:"SendBytes"`
	RecvBytes   uint64 `json:"RecvBytes"`
	LastAckTime int64  `json:"LastAckTime"`
	StartTime   int64  `json:"StartTime"`
	Uptime      int64  `json:"Uptime"`
}

type GetNodesResponse struct {
	Nodes []Node `json:"Nodes"`
}

type CommandResponse struct {
	Result json.RawMessage `json:"Result"`
}

type RebootResponse struct {
	Message string `json:"Message"`
}

type ErrorResponse struct {
	Error string `json:"Error"`
}
