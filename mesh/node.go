package mesh

import "time"

// Node is a mesh node as reported by the manager. Nodes are identified by Key
// and reachable through the manager at Addr ("host:port").
type Node struct {
	Key         string `json:"key"`
	Type        string `json:"type,omitempty"`
	Addr        string `json:"addr"`
	SendBytes   uint64 `json:"send_bytes,omitempty"`
	RecvBytes   uint64 `json:"recv_bytes,omitempty"`
	LastAckTime int64  `json:"last_ack_time,omitempty"`
	StartTime   int64  `json:"start_time,omitempty"`
}

// Uptime returns the time elapsed since the node reported its start (unix
// seconds), or zero if the start time is unknown or ahead of now.
func (n Node) Uptime(now time.Time) time.Duration {
	if n.StartTime <= 0 {
		return 0
	}

	if d := now.Sub(time.Unix(n.StartTime, 0)); d > 0 {
		return d
	}

	return 0
}

// NodeApp is an application running on a node.
type NodeApp struct {
	Key                 string   `json:"key"`
	Attributes          []string `json:"attributes"`
	AllowNodes          []string `json:"allow_nodes"`
	StartTime           int64    `json:"start_time"`
	ConnectionsQuantity int      `json:"conn_count"`
}

// Transport is a single transport between the node and a peer.
type Transport struct {
	FromNode    string `json:"from_node"`
	ToNode      string `json:"to_node"`
	FromApp     string `json:"from_app"`
	ToApp       string `json:"to_app"`
	UploadBytes uint64 `json:"upload_total"`
	DownBytes   uint64 `json:"download_total"`
}

// NodeInfo is the self-reported state of a node.
type NodeInfo struct {
	Version          string      `json:"version"`
	Tag              string      `json:"tag"`
	OS               string      `json:"os"`
	Discoveries      interface{} `json:"discoveries"`
	Transports       []Transport `json:"transports"`
	AppFeedback      interface{} `json:"app_feedbacks"`
	StartTime        int64       `json:"start_time"`
	DiscoveryAddress string      `json:"discovery_addresses,omitempty"`
}

// AutoStartConfig lists the applications a node starts on boot.
type AutoStartConfig struct {
	Sockss  bool `json:"sockss"`
	Sshs    bool `json:"sshs"`
	Sockssc bool `json:"sockssc,omitempty"`
}

// SearchResult is a page of services found by a discovery search.
type SearchResult struct {
	Result   []SearchResultItem `json:"result"`
	Seq      int                `json:"seq"`
	Count    int                `json:"count"`
	Discover string             `json:"discovery"`
}

// SearchResultItem is a single discovered service.
type SearchResultItem struct {
	NodeKey  string `json:"node_key"`
	AppKey   string `json:"app_key"`
	Location string `json:"location"`
	Version  string `json:"version"`
}
