//******************************************************************************************************
//  SubscriberConnection.go - Gbtc
//
//  Copyright © 2021, Grid Protection Alliance.  All Rights Reserved.
//
//  Licensed to the Grid Protection Alliance (GPA) under one or more contributor license agreements. See
//  the NOTICE file distributed with this work for additional information regarding copyright ownership.
//  The GPA licenses this file to you under the MIT License (MIT), the "License"; you may not use this
//  file except in compliance with the License. You may obtain a copy of the License at:
//
//      http://opensource.org/licenses/MIT
//
//  Unless agreed to in writing, the subject software distributed under the License is distributed on an
//  "AS-IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. Refer to the
//  License for the specific language governing permissions and limitations.
//
//  Code Modification History:
//  ----------------------------------------------------------------------------------------------------
//  09/09/2021 - J. Ritchie Carroll
//       Generated original version of source code.
//
//******************************************************************************************************

package transport

import (
	"encoding/binary"
	"errors"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sttp/goapi/sttp/guid"
	"github.com/sttp/goapi/sttp/ticks"
	"github.com/sttp/goapi/sttp/transport/tssc"
	"github.com/tevino/abool/v2"
)

// SubscriberConnection represents a subscriber connection to a data publisher, i.e., the
// publisher-side state and goroutine pair driving a single accepted command-channel socket.
type SubscriberConnection struct {
	ID               guid.Guid
	RemoteEndpoint   string
	encoding         OperationalEncodingEnum
	operationalModes OperationalModesEnum

	usingCompact             bool
	includeTime              bool
	useMillisecondResolution bool
	compressPayload          bool
	compressMetadata         bool
	compressSignalIndexCache bool

	startTime          string
	stopTime           string
	processingInterval int32

	subscribed abool.AtomicBool
	closing    abool.AtomicBool

	signalSetMutex sync.RWMutex
	signalSet      guid.HashSet

	signalIndexCacheMutex sync.RWMutex
	signalIndexCache      [2]*SignalIndexCache
	activeCacheIndex      int32

	baseTimeOffsets [2]int64

	tsscEncoderMutex sync.Mutex
	tsscEncoder      *tssc.Encoder

	lastKeepalive int64

	conn       net.Conn
	writeQueue chan []byte
	done       chan struct{}

	useUDP  bool
	udpConn *net.UDPConn

	cipherMutex        sync.RWMutex
	cipherKeys         [2]cipherKeyPair
	activeCipherIndex  int32
	pendingCipherIndex int32
	cipherAckTimer     *time.Timer

	assigningHandlerMutex sync.RWMutex

	// handler resolves subscription-affecting commands into routing-engine state changes; set by
	// DataPublisher when the connection is started.
	handler SubscriberConnectionHandler

	// StatusMessageCallback is invoked to surface non-fatal diagnostic information.
	StatusMessageCallback func(string)
	// ErrorMessageCallback is invoked to surface non-fatal errors.
	ErrorMessageCallback func(string)
	// ConnectionTerminatedCallback is invoked once the connection has fully closed.
	ConnectionTerminatedCallback func(*SubscriberConnection)
}

// NewSubscriberConnection creates a new publisher-side SubscriberConnection wrapping an
// accepted socket. The caller is expected to launch the read/write loops via Start.
func NewSubscriberConnection(conn net.Conn) *SubscriberConnection {
	sc := &SubscriberConnection{
		ID:               guid.New(),
		RemoteEndpoint:   conn.RemoteAddr().String(),
		encoding:         OperationalEncoding.UTF8,
		conn:             conn,
		writeQueue:       make(chan []byte, outboundQueueDepth),
		done:             make(chan struct{}),
		signalSet:        make(guid.HashSet),
		lastKeepalive:    time.Now().UnixNano(),
	}

	sc.signalIndexCache[0] = NewSignalIndexCache()
	sc.signalIndexCache[1] = NewSignalIndexCache()

	return sc
}

// DecodeString decodes an STTP string according to the connection's negotiated encoding.
func (sc *SubscriberConnection) DecodeString(data []byte, length uint32) string {
	if sc.encoding != OperationalEncoding.UTF8 {
		panic("Go implementation of STTP only supports UTF8 string encoding")
	}

	return string(data[:length])
}

// EncodeString encodes a string value according to the connection's negotiated encoding.
func (sc *SubscriberConnection) EncodeString(value string) []byte {
	if sc.encoding != OperationalEncoding.UTF8 {
		panic("Go implementation of STTP only supports UTF8 string encoding")
	}

	return []byte(value)
}

// SignalSet gets a snapshot of the set of signal IDs this connection is currently subscribed to.
func (sc *SubscriberConnection) SignalSet() guid.HashSet {
	sc.signalSetMutex.RLock()
	defer sc.signalSetMutex.RUnlock()

	set := make(guid.HashSet, len(sc.signalSet))

	for id := range sc.signalSet {
		set.Add(id)
	}

	return set
}

// SetSignalSet replaces the connection's subscribed signal set and rebuilds its signal-index
// cache, per §4.2: a new cache implicitly resets TSSC state.
func (sc *SubscriberConnection) SetSignalSet(signalSet guid.HashSet, records []signalIndexRecord) {
	sc.signalSetMutex.Lock()
	sc.signalSet = signalSet
	sc.signalSetMutex.Unlock()

	cache := NewSignalIndexCache()

	for i, record := range records {
		cache.addPublisherRecord(int32(i), record.signalID, record.source, record.id)
	}

	sc.signalIndexCacheMutex.Lock()
	nextIndex := (atomic.LoadInt32(&sc.activeCacheIndex) + 1) & 1
	sc.signalIndexCache[nextIndex] = cache
	atomic.StoreInt32(&sc.activeCacheIndex, nextIndex)
	sc.signalIndexCacheMutex.Unlock()

	sc.tsscEncoderMutex.Lock()
	sc.tsscEncoder = tssc.NewEncoder(cache.MaxSignalIndex())
	sc.tsscEncoderMutex.Unlock()

	sc.subscribed.Set()
}

// signalIndexRecord is the per-signal detail needed to populate a SignalIndexCache entry.
type signalIndexRecord struct {
	signalID guid.Guid
	source   string
	id       uint64
}

// ActiveSignalIndexCache gets the signal-index cache currently selected for outbound data packets.
func (sc *SubscriberConnection) ActiveSignalIndexCache() *SignalIndexCache {
	sc.signalIndexCacheMutex.RLock()
	defer sc.signalIndexCacheMutex.RUnlock()

	return sc.signalIndexCache[atomic.LoadInt32(&sc.activeCacheIndex)&1]
}

// IsSubscribed determines if this connection has an active subscription.
func (sc *SubscriberConnection) IsSubscribed() bool {
	return sc.subscribed.IsSet()
}

// Touch records receipt of a frame for keepalive tracking.
func (sc *SubscriberConnection) Touch() {
	atomic.StoreInt64(&sc.lastKeepalive, time.Now().UnixNano())
}

// IsStale determines if this connection has exceeded the given keepalive timeout.
func (sc *SubscriberConnection) IsStale(timeout time.Duration) bool {
	last := time.Unix(0, atomic.LoadInt64(&sc.lastKeepalive))
	return time.Since(last) > timeout
}

// sendFrame enqueues a pre-built response frame, i.e., [4-byte length][1-byte response code][payload].
func (sc *SubscriberConnection) sendFrame(response ServerResponseEnum, payload []byte) error {
	if sc.closing.IsSet() {
		return errConnectionClosing
	}

	frame := make([]byte, payloadHeaderSize+1+uint32(len(payload)))
	binary.BigEndian.PutUint32(frame, uint32(1+len(payload)))
	frame[payloadHeaderSize] = byte(response)
	copy(frame[payloadHeaderSize+1:], payload)

	select {
	case sc.writeQueue <- frame:
		return nil
	default:
		return errOutboundQueueFull
	}
}

// SendDataStartTime notifies the subscriber of the timestamp of the first measurement published.
func (sc *SubscriberConnection) SendDataStartTime(startTime ticks.Ticks) error {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, uint64(startTime))
	return sc.sendFrame(ServerResponse.DataStartTime, payload)
}

// SendUpdateBaseTimes publishes a fresh pair of base timestamps used by the compact measurement codec.
func (sc *SubscriberConnection) SendUpdateBaseTimes(rollover, base0, base1 int64) error {
	sc.baseTimeOffsets[0] = base0
	sc.baseTimeOffsets[1] = base1

	payload := make([]byte, 24)
	binary.BigEndian.PutUint64(payload, uint64(rollover))
	binary.BigEndian.PutUint64(payload[8:], uint64(base0))
	binary.BigEndian.PutUint64(payload[16:], uint64(base1))
	return sc.sendFrame(ServerResponse.UpdateBaseTimes, payload)
}

// writeLoop drains the outbound frame queue and serializes all writes to the command socket.
func (sc *SubscriberConnection) writeLoop() {
	for {
		select {
		case frame, ok := <-sc.writeQueue:
			if !ok {
				return
			}

			if _, err := sc.conn.Write(frame); err != nil {
				sc.dispatchError("Failed to write to command channel: " + err.Error())
				sc.Close()
				return
			}
		case <-sc.done:
			return
		}
	}
}

func (sc *SubscriberConnection) dispatchError(message string) {
	sc.assigningHandlerMutex.RLock()
	defer sc.assigningHandlerMutex.RUnlock()

	if sc.ErrorMessageCallback != nil {
		sc.ErrorMessageCallback(message)
	}
}

func (sc *SubscriberConnection) dispatchStatus(message string) {
	sc.assigningHandlerMutex.RLock()
	defer sc.assigningHandlerMutex.RUnlock()

	if sc.StatusMessageCallback != nil {
		sc.StatusMessageCallback(message)
	}
}

// SubscriberConnectionHandler is implemented by a DataPublisher to resolve the commands a
// SubscriberConnection receives on its command channel into routing-engine state changes.
type SubscriberConnectionHandler interface {
	// HandleMetadataRefresh is invoked when a subscriber requests a metadata snapshot.
	HandleMetadataRefresh(sc *SubscriberConnection)
	// HandleSubscribe is invoked when a subscriber requests or updates a subscription, with the
	// connection string parsed from the Subscribe command payload.
	HandleSubscribe(sc *SubscriberConnection, connectionString string)
	// HandleUnsubscribe is invoked when a subscriber cancels its subscription.
	HandleUnsubscribe(sc *SubscriberConnection)
	// HandleRotateCipherKeys is invoked when a subscriber requests a new pair of UDP cipher keys.
	HandleRotateCipherKeys(sc *SubscriberConnection)
}

// Start launches the read and write goroutines driving this connection's command channel.
func (sc *SubscriberConnection) Start(handler SubscriberConnectionHandler) {
	sc.handler = handler
	go sc.writeLoop()
	go sc.readLoop()
}

// readLoop reads and dispatches inbound command frames until the connection fails or closes.
func (sc *SubscriberConnection) readLoop() {
	reader := newFrameReader(sc.conn)

	for {
		payload, err := reader.readFrame()

		if err != nil {
			sc.Close()
			return
		}

		sc.Touch()

		if len(payload) == 0 {
			continue
		}

		sc.dispatchCommand(ServerCommandEnum(payload[0]), payload[1:])
	}
}

//gocyclo:ignore
func (sc *SubscriberConnection) dispatchCommand(command ServerCommandEnum, data []byte) {
	switch command {
	case ServerCommand.DefineOperationalModes:
		sc.handleDefineOperationalModes(data)
	case ServerCommand.MetadataRefresh:
		if sc.handler != nil {
			sc.handler.HandleMetadataRefresh(sc)
		}
	case ServerCommand.Subscribe:
		sc.handleSubscribe(data)
	case ServerCommand.Unsubscribe:
		sc.subscribed.UnSet()
		if sc.handler != nil {
			sc.handler.HandleUnsubscribe(sc)
		}
	case ServerCommand.RotateCipherKeys:
		if sc.handler != nil {
			sc.handler.HandleRotateCipherKeys(sc)
		}
	case ServerCommand.UpdateProcessingInterval:
		if len(data) >= 4 {
			sc.processingInterval = int32(binary.BigEndian.Uint32(data))
		}
		sc.sendFrame(ServerResponse.Succeeded, []byte{byte(ServerCommand.UpdateProcessingInterval)})
	case ServerCommand.ConfirmNotification:
		sc.acknowledgeCipherRotation()
	case ServerCommand.ConfirmBufferBlock, ServerCommand.ConfirmSignalIndexCache:
		// Acknowledgements only require the keepalive touch already recorded above.
	}
}

func (sc *SubscriberConnection) handleDefineOperationalModes(data []byte) {
	if len(data) < 4 {
		return
	}

	modes := OperationalModesEnum(binary.BigEndian.Uint32(data))
	sc.operationalModes = modes

	switch modes & OperationalModes.ServerResponseEnumEncodingMask {
	case OperationalModesEnum(OperationalEncoding.UTF16LE):
		sc.encoding = OperationalEncoding.UTF16LE
	case OperationalModesEnum(OperationalEncoding.UTF16BE):
		sc.encoding = OperationalEncoding.UTF16BE
	default:
		sc.encoding = OperationalEncoding.UTF8
	}

	sc.compressPayload = modes&OperationalModes.ServerResponseEnumCompressPayloadData != 0
	sc.compressMetadata = modes&OperationalModes.ServerResponseEnumCompressMetadata != 0
	sc.compressSignalIndexCache = modes&OperationalModes.ServerResponseEnumCompressSignalIndexCache != 0
	sc.usingCompact = true

	sc.sendFrame(ServerResponse.Succeeded, []byte{byte(ServerCommand.DefineOperationalModes)})
}

func (sc *SubscriberConnection) handleSubscribe(data []byte) {
	if len(data) < 5 {
		sc.sendFrame(ServerResponse.Failed, append([]byte{byte(ServerCommand.Subscribe)}, sc.EncodeString("malformed subscribe request")...))
		return
	}

	length := binary.BigEndian.Uint32(data[1:])
	offset := uint32(5)

	if uint32(len(data)) < offset+length {
		sc.sendFrame(ServerResponse.Failed, append([]byte{byte(ServerCommand.Subscribe)}, sc.EncodeString("malformed subscribe request")...))
		return
	}

	connectionString := sc.DecodeString(data[offset:offset+length], length)
	sc.useUDP = data[0]&0x01 != 0
	sc.includeTime = true
	sc.useMillisecondResolution = false

	if sc.handler != nil {
		sc.handler.HandleSubscribe(sc, connectionString)
	}

	sc.sendFrame(ServerResponse.Succeeded, append([]byte{byte(ServerCommand.Subscribe)}, sc.EncodeString("subscription accepted")...))
}

const cipherRotationAckTimeout = 5 * time.Second

// openUDPDataChannel dials a UDP socket to the subscriber's remote address on the given port,
// i.e., the port the subscriber reported it is listening on for data packets.
func (sc *SubscriberConnection) openUDPDataChannel(remotePort uint16) error {
	host, _, err := net.SplitHostPort(sc.RemoteEndpoint)

	if err != nil {
		host = sc.RemoteEndpoint
	}

	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(int(remotePort))))

	if err != nil {
		return err
	}

	conn, err := net.DialUDP("udp", nil, addr)

	if err != nil {
		return err
	}

	sc.udpConn = conn

	return nil
}

// sendUDPDatagram writes one self-contained, unframed data packet to the subscriber's UDP
// endpoint. UDP datagram loss is expected and is not retried.
func (sc *SubscriberConnection) sendUDPDatagram(payload []byte) error {
	if sc.udpConn == nil {
		return errors.New("UDP data channel is not established for this connection")
	}

	_, err := sc.udpConn.Write(payload)

	return err
}

// initializeCipherKeys generates a fresh key pair for both cipher slots and sends them to the
// subscriber as the initial UpdateCipherKeys handshake for a newly established UDP data channel.
func (sc *SubscriberConnection) initializeCipherKeys() error {
	even, err := newCipherKeyPair()

	if err != nil {
		return err
	}

	odd, err := newCipherKeyPair()

	if err != nil {
		return err
	}

	sc.cipherMutex.Lock()
	sc.cipherKeys[0] = even
	sc.cipherKeys[1] = odd
	atomic.StoreInt32(&sc.activeCipherIndex, 0)
	pairs := sc.cipherKeys
	sc.cipherMutex.Unlock()

	return sc.sendFrame(ServerResponse.UpdateCipherKeys, encodeCipherKeys(pairs))
}

// rotateCipherKeys generates a fresh key pair for the currently inactive cipher slot and sends
// both slots to the subscriber, arming a timeout that closes the connection if the rotation is
// not acknowledged via ConfirmNotification within cipherRotationAckTimeout.
func (sc *SubscriberConnection) rotateCipherKeys() error {
	fresh, err := newCipherKeyPair()

	if err != nil {
		return err
	}

	active := atomic.LoadInt32(&sc.activeCipherIndex)
	inactive := (active + 1) & 1

	sc.cipherMutex.Lock()
	sc.cipherKeys[inactive] = fresh
	sc.pendingCipherIndex = inactive
	pairs := sc.cipherKeys

	if sc.cipherAckTimer != nil {
		sc.cipherAckTimer.Stop()
	}

	sc.cipherAckTimer = time.AfterFunc(cipherRotationAckTimeout, sc.Close)
	sc.cipherMutex.Unlock()

	return sc.sendFrame(ServerResponse.UpdateCipherKeys, encodeCipherKeys(pairs))
}

// acknowledgeCipherRotation completes a pending cipher-key rotation upon the subscriber's
// ConfirmNotification, flipping the active cipher selector to the newly distributed slot.
func (sc *SubscriberConnection) acknowledgeCipherRotation() {
	sc.cipherMutex.Lock()
	defer sc.cipherMutex.Unlock()

	if sc.cipherAckTimer == nil {
		return
	}

	sc.cipherAckTimer.Stop()
	sc.cipherAckTimer = nil
	atomic.StoreInt32(&sc.activeCipherIndex, sc.pendingCipherIndex)
}

// encryptForUDP encrypts a data packet payload with the active cipher slot's key, returning the
// encrypted bytes and the cipher index used so the caller can set DataPacketFlags.CipherIndex.
func (sc *SubscriberConnection) encryptForUDP(payload []byte) ([]byte, int32, error) {
	index := atomic.LoadInt32(&sc.activeCipherIndex)

	sc.cipherMutex.RLock()
	pair := sc.cipherKeys[index]
	sc.cipherMutex.RUnlock()

	if len(pair.key) == 0 {
		return payload, index, nil
	}

	encrypted, err := encipherAES(pair.key, pair.iv, pkcs7Pad(payload))

	return encrypted, index, err
}

// Close shuts down the connection's socket and write loop exactly once.
func (sc *SubscriberConnection) Close() {
	if sc.closing.IsSet() {
		return
	}

	sc.closing.Set()

	sc.conn.Close()

	if sc.udpConn != nil {
		sc.udpConn.Close()
	}

	sc.cipherMutex.Lock()
	if sc.cipherAckTimer != nil {
		sc.cipherAckTimer.Stop()
	}
	sc.cipherMutex.Unlock()

	close(sc.done)

	sc.assigningHandlerMutex.RLock()
	callback := sc.ConnectionTerminatedCallback
	sc.assigningHandlerMutex.RUnlock()

	if callback != nil {
		callback(sc)
	}
}
