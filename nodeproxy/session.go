package nodeproxy

import (
	"sync"

	"github.com/maxpoletaev/meshconsole/mesh"
)

// Session holds the node selected by the operator. Every node command is sent
// to the current node of the session it runs in.
type Session struct {
	mut     sync.RWMutex
	current *mesh.Node
}

func NewSession() *Session {
	return &Session{}
}

// SetCurrentNode selects the node for subsequent commands.
func (s *Session) SetCurrentNode(node mesh.Node) {
	s.mut.Lock()
	s.current = &node
	s.mut.Unlock()
}

// CurrentNode returns the selected node. The second return value is false if
// no node has been selected yet.
func (s *Session) CurrentNode() (mesh.Node, bool) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if s.current == nil {
		return mesh.Node{}, false
	}

	return *s.current, true
}
