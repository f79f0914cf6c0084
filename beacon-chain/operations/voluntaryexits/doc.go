// Package voluntaryexits keeps the voluntary exits seen on gossip, one per validator,
// so they can be re-broadcast or handed to a block producer.
package voluntaryexits
