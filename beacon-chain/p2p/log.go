package p2p

import (
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "p2p")

// logListenAddrs prints the dialable form of every IP listen address so operators can paste it
// into another node's --peer flag.
func logListenAddrs(id peer.ID, addrs []ma.Multiaddr) {
	for _, addr := range addrs {
		if !hasIPComponent(addr) {
			continue
		}
		log.WithField("multiAddr", addr.String()+"/p2p/"+id.String()).Info("Node started p2p server")
	}
}

func hasIPComponent(addr ma.Multiaddr) bool {
	for _, p := range addr.Protocols() {
		if p.Code == ma.P_IP4 || p.Code == ma.P_IP6 {
			return true
		}
	}
	return false
}
