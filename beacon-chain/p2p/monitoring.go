package p2p

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	p2pPeerCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "p2p_peer_count",
		Help: "The number of currently connected peers",
	})
	p2pTopicMeshPeers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "p2p_topic_mesh_peers",
		Help: "The number of gossipsub mesh peers per topic",
	},
		[]string{"topic"})
	messagesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "p2p_messages_published_total",
		Help: "Count of messages handed to gossipsub for publishing",
	},
		[]string{"topic"})
)

func (s *Service) updateMetrics() {
	p2pPeerCount.Set(float64(s.ConnectedPeerCount()))
	for topic, peers := range s.DumpMeshPeers() {
		p2pTopicMeshPeers.WithLabelValues(topicLabel(topic)).Set(float64(len(peers)))
	}
}

// topicLabel drops the fork digest so metric cardinality does not grow across forks.
func topicLabel(topic string) string {
	g, err := ParseGossipTopic(topic)
	if err != nil {
		return "unknown"
	}
	return g.Name()
}
