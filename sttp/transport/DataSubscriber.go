//******************************************************************************************************
//  DataSubscriber.go - Gbtc
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
	"fmt"
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

const (
	defaultKeepaliveTimeout = 30 * time.Second
	outboundQueueDepth      = 64
)

// DataSubscriber represents a client subscription for an STTP connection.
type DataSubscriber struct {
	subscriptionInfo SubscriptionInfo
	encoding         OperationalEncodingEnum

	// CompressPayloadData determines whether TSSC compression is requested for data packets.
	CompressPayloadData bool
	// CompressMetadata determines whether gzip compression is requested for the metadata exchange.
	CompressMetadata bool
	// CompressSignalIndexCache determines whether gzip compression is requested for signal-index-cache exchange.
	CompressSignalIndexCache bool
	// Version defines the requested STTP protocol version, i.e., the low 5 bits of operational modes.
	Version byte
	// SwapGuidEndianness records whether GUIDs are to be transmitted in Microsoft RPC byte order as
	// opposed to RFC byte order; it defaults to false. The signal-index cache codec does not read it:
	// GUIDs in the cache are always encoded and decoded in RFC byte order.
	SwapGuidEndianness bool

	// Callback references - assignment is serialized by BeginCallbackAssignment/EndCallbackAssignment.
	StatusMessageCallback        func(string)
	ErrorMessageCallback         func(string)
	MetadataReceivedCallback     func([]byte)
	SubscriptionUpdatedCallback  func(*SignalIndexCache)
	DataStartTimeCallback        func(ticks.Ticks)
	ConfigurationChangedCallback func()
	ProcessingCompleteCallback   func(string)
	NotificationReceivedCallback func(string)
	NewMeasurementsCallback      func([]Measurement)
	NewBufferBlocksCallback      func([]BufferBlock)
	ConnectionTerminatedCallback func()

	// AutoReconnectCallback is invoked by the reader loop when the command channel drops and the
	// connector is configured for automatic reconnection; assigned by SubscriberConnector.connect.
	AutoReconnectCallback func()

	connector SubscriberConnector
	disposing abool.AtomicBool
	connected abool.AtomicBool
	subscribed abool.AtomicBool

	assigningHandlerMutex sync.RWMutex

	conn net.Conn

	signalIndexCacheMutex sync.RWMutex
	signalIndexCache      [2]*SignalIndexCache
	cacheIndex            int32

	baseTimeOffsets [2]int64
	timeIndex       int32

	metadataRequestTime time.Time

	metadataMutex sync.Mutex
	metadata      map[guid.Guid]*MeasurementMetadata

	subscriberID guid.Guid

	totalCommandChannelBytesReceived uint64
	totalDataChannelBytesReceived    uint64
	totalMeasurementsReceived        uint64

	writeQueue chan []byte
	done       chan struct{}

	udpConn       *net.UDPConn
	cipherMutex   sync.RWMutex
	cipherKeys    [2]cipherKeyPair
	cipherKeysSet bool
}

// NewDataSubscriber creates a new DataSubscriber.
func NewDataSubscriber() *DataSubscriber {
	ds := &DataSubscriber{
		encoding: OperationalEncoding.UTF8,
		Version:  2,
		metadata: make(map[guid.Guid]*MeasurementMetadata),
	}

	ds.signalIndexCache[0] = NewSignalIndexCache()
	ds.signalIndexCache[1] = NewSignalIndexCache()

	return ds
}

// SetSubscriptionInfo assigns the desired SubscriptionInfo for a DataSubscriber.
func (ds *DataSubscriber) SetSubscriptionInfo(info SubscriptionInfo) {
	ds.subscriptionInfo = info
}

// Subscription gets a mutable reference to the DataSubscriber's current SubscriptionInfo,
// allowing settings to be changed in place before a call to Subscribe.
func (ds *DataSubscriber) Subscription() *SubscriptionInfo {
	return &ds.subscriptionInfo
}

// Connector gets the SubscriberConnector responsible for establishing and reestablishing
// the connection to the data publisher.
func (ds *DataSubscriber) Connector() *SubscriberConnector {
	return &ds.connector
}

// DecodeString decodes an STTP string according to the defined operational modes.
func (ds *DataSubscriber) DecodeString(data []byte, length uint32) string {
	// Latest version of STTP only encodes to UTF8, the default for Go
	if ds.encoding != OperationalEncoding.UTF8 {
		panic("Go implementation of STTP only supports UTF8 string encoding")
	}

	return string(data[:length])
}

// EncodeString encodes a string value according to the defined operational modes.
func (ds *DataSubscriber) EncodeString(value string) []byte {
	if ds.encoding != OperationalEncoding.UTF8 {
		panic("Go implementation of STTP only supports UTF8 string encoding")
	}

	return []byte(value)
}

// IsConnected determines if a command channel connection is currently active.
func (ds *DataSubscriber) IsConnected() bool {
	return ds.connected.IsSet()
}

// IsSubscribed determines if a subscription is currently active.
func (ds *DataSubscriber) IsSubscribed() bool {
	return ds.subscribed.IsSet()
}

// ActiveSignalIndexCache gets the signal-index cache most recently installed by an
// UpdateSignalIndexCache response.
func (ds *DataSubscriber) ActiveSignalIndexCache() *SignalIndexCache {
	ds.signalIndexCacheMutex.RLock()
	defer ds.signalIndexCacheMutex.RUnlock()

	return ds.signalIndexCache[atomic.LoadInt32(&ds.cacheIndex)&1]
}

// SubscriberID gets the subscriber ID as assigned by the data publisher upon receipt of the SignalIndexCache.
func (ds *DataSubscriber) SubscriberID() guid.Guid {
	return ds.subscriberID
}

// TotalCommandChannelBytesReceived gets the total number of bytes received via the command channel since last connection.
func (ds *DataSubscriber) TotalCommandChannelBytesReceived() uint64 {
	return atomic.LoadUint64(&ds.totalCommandChannelBytesReceived)
}

// TotalDataChannelBytesReceived gets the total number of bytes received via the data channel since last connection.
func (ds *DataSubscriber) TotalDataChannelBytesReceived() uint64 {
	return atomic.LoadUint64(&ds.totalDataChannelBytesReceived)
}

// TotalMeasurementsReceived gets the total number of measurements received since last subscription.
func (ds *DataSubscriber) TotalMeasurementsReceived() uint64 {
	return atomic.LoadUint64(&ds.totalMeasurementsReceived)
}

// LookupMetadata gets the MeasurementMetadata for the specified signalID from the local
// registry. If the metadata does not exist, a new record is created and returned.
func (ds *DataSubscriber) LookupMetadata(signalID guid.Guid) *MeasurementMetadata {
	ds.metadataMutex.Lock()
	defer ds.metadataMutex.Unlock()

	metadata, ok := ds.metadata[signalID]

	if !ok {
		metadata = &MeasurementMetadata{SignalID: signalID, Multiplier: 1.0}
		ds.metadata[signalID] = metadata
	}

	return metadata
}

// Metadata gets the measurement-level metadata associated with a measurement from the local
// registry. If the metadata does not exist, a new record is created and returned.
func (ds *DataSubscriber) Metadata(measurement *Measurement) *MeasurementMetadata {
	return ds.LookupMetadata(measurement.SignalID)
}

// AdjustedValue gets the Value of a Measurement with any linear adjustments applied from the
// measurement's Adder and Multiplier metadata, if found.
func (ds *DataSubscriber) AdjustedValue(measurement *Measurement) float64 {
	metadata := ds.Metadata(measurement)
	multiplier := metadata.Multiplier

	if multiplier == 0 {
		multiplier = 1.0
	}

	return measurement.Value*multiplier + metadata.Adder
}

// BeginCallbackAssignment informs DataSubscriber that a callback change has been initiated.
func (ds *DataSubscriber) BeginCallbackAssignment() {
	ds.assigningHandlerMutex.Lock()
}

// EndCallbackAssignment informs DataSubscriber that a callback change has been completed.
func (ds *DataSubscriber) EndCallbackAssignment() {
	ds.assigningHandlerMutex.Unlock()
}

func (ds *DataSubscriber) beginCallbackSync() {
	ds.assigningHandlerMutex.RLock()
}

func (ds *DataSubscriber) endCallbackSync() {
	ds.assigningHandlerMutex.RUnlock()
}

// connect establishes the command channel TCP connection and queues the DefineOperationalModes
// command. It returns once the command is queued and does not wait for the publisher's response;
// reconnection looping is the responsibility of SubscriberConnector.
func (ds *DataSubscriber) connect(hostname string, port uint16, autoReconnecting bool) error {
	if ds.disposing.IsSet() {
		return errors.New("data subscriber is disposing")
	}

	address := net.JoinHostPort(hostname, strconv.Itoa(int(port)))
	conn, err := net.DialTimeout("tcp", address, 5*time.Second)

	if err != nil {
		return err
	}

	ds.conn = conn
	ds.writeQueue = make(chan []byte, outboundQueueDepth)
	ds.done = make(chan struct{})
	ds.signalIndexCache[0] = NewSignalIndexCache()
	ds.signalIndexCache[1] = NewSignalIndexCache()
	atomic.StoreInt32(&ds.cacheIndex, 0)

	go ds.writeLoop()
	go ds.readLoop()

	ds.connected.Set()

	if err := ds.sendOperationalModes(); err != nil {
		ds.connected.UnSet()
		conn.Close()
		return err
	}

	return nil
}

func (ds *DataSubscriber) sendOperationalModes() error {
	var modes OperationalModesEnum = OperationalModesEnum(ds.Version) & OperationalModes.ServerResponseEnumVersionMask
	modes |= OperationalModesEnum(ds.encoding)

	if ds.CompressPayloadData {
		modes |= OperationalModesEnum(CompressionModes.TSSC)
		modes |= OperationalModes.ServerResponseEnumCompressPayloadData
	}

	if ds.CompressMetadata {
		modes |= OperationalModes.ServerResponseEnumCompressMetadata
	}

	if ds.CompressSignalIndexCache {
		modes |= OperationalModes.ServerResponseEnumCompressSignalIndexCache
	}

	payload := make([]byte, 4)
	binary.BigEndian.PutUint32(payload, uint32(modes))

	return ds.SendServerCommandWithPayload(ServerCommand.DefineOperationalModes, payload)
}

// Disconnect tears down the command channel connection.
func (ds *DataSubscriber) Disconnect() {
	if ds.connected.IsNotSet() {
		return
	}

	ds.connected.UnSet()
	ds.subscribed.UnSet()

	if ds.conn != nil {
		ds.conn.Close()
	}

	if ds.udpConn != nil {
		ds.udpConn.Close()
		ds.udpConn = nil
	}

	if ds.done != nil {
		close(ds.done)
	}
}

// Dispose cleanly shuts down a DataSubscriber and cancels any pending reconnection attempts.
func (ds *DataSubscriber) Dispose() {
	ds.disposing.Set()
	ds.connector.Cancel()
	ds.Disconnect()
}

// Subscribe sends a Subscribe command built from the current SubscriptionInfo.
func (ds *DataSubscriber) Subscribe() {
	info := &ds.subscriptionInfo

	var flags byte

	if info.UdpDataChannel {
		flags |= 0x01

		if ds.udpConn == nil {
			if err := ds.openUDPDataChannel(info.DataChannelLocalPort); err != nil {
				ds.dispatchError("Failed to open UDP data channel: " + err.Error())
			}
		}
	}

	var connectionString string

	connectionString += "throttled=" + boolString(info.Throttled) + ";"
	connectionString += "publishInterval=" + floatString(info.PublishInterval) + ";"
	connectionString += "includeTime=" + boolString(info.IncludeTime) + ";"
	connectionString += "enableTimeReasonabilityCheck=" + boolString(info.EnableTimeReasonabilityCheck) + ";"
	connectionString += "lagTime=" + floatString(info.LagTime) + ";"
	connectionString += "leadTime=" + floatString(info.LeadTime) + ";"
	connectionString += "useLocalClockAsRealTime=" + boolString(info.UseLocalClockAsRealTime) + ";"
	connectionString += "useMillisecondResolution=" + boolString(info.UseMillisecondResolution) + ";"
	connectionString += "requestNaNValueFilter=" + boolString(info.RequestNaNValueFilter) + ";"
	connectionString += "assemblyInfo={FilterExpression=" + info.FilterExpression + "}"

	if info.UdpDataChannel {
		connectionString += ";dataChannel={localPort=" + strconv.Itoa(int(info.DataChannelLocalPort)) + "}"
	}

	if len(info.StartTime) > 0 {
		connectionString += ";startTimeConstraint=" + info.StartTime
		connectionString += ";stopTimeConstraint=" + info.StopTime
		connectionString += ";timeConstraintParameters=" + info.ConstraintParameters
	}

	if info.ProcessingInterval != 0 {
		connectionString += fmt.Sprintf(";processingInterval=%d", info.ProcessingInterval)
	}

	if len(info.ExtraConnectionStringParameters) > 0 {
		connectionString += ";" + info.ExtraConnectionStringParameters
	}

	encoded := ds.EncodeString(connectionString)
	payload := make([]byte, 1+4+len(encoded))
	payload[0] = flags
	binary.BigEndian.PutUint32(payload[1:], uint32(len(encoded)))
	copy(payload[5:], encoded)

	ds.SendServerCommandWithPayload(ServerCommand.Subscribe, payload)
}

// Unsubscribe sends an Unsubscribe command.
func (ds *DataSubscriber) Unsubscribe() {
	ds.subscribed.UnSet()
	ds.SendServerCommand(ServerCommand.Unsubscribe)
}

// SendServerCommand queues a bare server command for transmission with no payload.
func (ds *DataSubscriber) SendServerCommand(command ServerCommandEnum) {
	ds.SendServerCommandWithPayload(command, nil)
}

// SendServerCommandWithPayload queues a server command and its payload for transmission.
func (ds *DataSubscriber) SendServerCommandWithPayload(command ServerCommandEnum, payload []byte) error {
	if ds.connected.IsNotSet() {
		return errors.New("not connected")
	}

	frame := make([]byte, payloadHeaderSize+1+uint32(len(payload)))
	binary.BigEndian.PutUint32(frame, uint32(1+len(payload)))
	frame[payloadHeaderSize] = byte(command)
	copy(frame[payloadHeaderSize+1:], payload)

	select {
	case ds.writeQueue <- frame:
		return nil
	default:
		return errors.New("outbound command queue is full")
	}
}

func (ds *DataSubscriber) writeLoop() {
	for {
		select {
		case frame, ok := <-ds.writeQueue:
			if !ok {
				return
			}

			if ds.conn == nil {
				return
			}

			if _, err := ds.conn.Write(frame); err != nil {
				ds.dispatchError("Failed to write to command channel: " + err.Error())
				return
			}
		case <-ds.done:
			return
		}
	}
}

func (ds *DataSubscriber) readLoop() {
	conn := ds.conn
	reader := newFrameReader(conn)

	for {
		payload, err := reader.readFrame()

		if err != nil {
			ds.handleConnectionTerminated()
			return
		}

		atomic.AddUint64(&ds.totalCommandChannelBytesReceived, uint64(len(payload)+int(payloadHeaderSize)))

		if len(payload) == 0 {
			continue
		}

		ds.dispatchResponse(ServerResponseEnum(payload[0]), payload[1:])
	}
}

func (ds *DataSubscriber) handleConnectionTerminated() {
	if ds.connected.IsNotSet() {
		return
	}

	ds.connected.UnSet()
	ds.subscribed.UnSet()

	ds.beginCallbackSync()

	if ds.ConnectionTerminatedCallback != nil {
		ds.ConnectionTerminatedCallback()
	}

	ds.endCallbackSync()

	if ds.disposing.IsNotSet() && ds.AutoReconnectCallback != nil {
		ds.AutoReconnectCallback()
	}
}

//gocyclo:ignore
func (ds *DataSubscriber) dispatchResponse(response ServerResponseEnum, data []byte) {
	switch response {
	case ServerResponse.Succeeded:
		ds.handleSucceeded(data)
	case ServerResponse.Failed:
		ds.handleFailed(data)
	case ServerResponse.DataPacket:
		ds.handleDataPacket(data)
	case ServerResponse.UpdateSignalIndexCache:
		ds.handleUpdateSignalIndexCache(data)
	case ServerResponse.UpdateBaseTimes:
		ds.handleUpdateBaseTimes(data)
	case ServerResponse.UpdateCipherKeys:
		ds.handleUpdateCipherKeys(data)
	case ServerResponse.DataStartTime:
		if len(data) >= 8 {
			startTime := ticks.Ticks(binary.BigEndian.Uint64(data))
			ds.beginCallbackSync()
			if ds.DataStartTimeCallback != nil {
				ds.DataStartTimeCallback(startTime)
			}
			ds.endCallbackSync()
		}
	case ServerResponse.ProcessingComplete:
		message := ds.DecodeString(data, uint32(len(data)))
		ds.beginCallbackSync()
		if ds.ProcessingCompleteCallback != nil {
			ds.ProcessingCompleteCallback(message)
		}
		ds.endCallbackSync()
	case ServerResponse.BufferBlock:
		ds.handleBufferBlock(data)
	case ServerResponse.Notify:
		message := ds.DecodeString(data, uint32(len(data)))
		ds.SendServerCommand(ServerCommand.ConfirmNotification)
		ds.beginCallbackSync()
		if ds.NotificationReceivedCallback != nil {
			ds.NotificationReceivedCallback(message)
		}
		ds.endCallbackSync()
	case ServerResponse.ConfigurationChanged:
		ds.beginCallbackSync()
		if ds.ConfigurationChangedCallback != nil {
			ds.ConfigurationChangedCallback()
		}
		ds.endCallbackSync()
	case ServerResponse.NoOP:
		// Keepalive ping; no action required.
	}
}

func (ds *DataSubscriber) handleSucceeded(data []byte) {
	if len(data) == 0 {
		return
	}

	command := ServerCommandEnum(data[0])

	if command == ServerCommand.MetadataRefresh {
		ds.handleMetadataRefreshSucceeded(data[1:])
	}
}

func (ds *DataSubscriber) handleMetadataRefreshSucceeded(payload []byte) {
	metadata := payload

	if ds.CompressMetadata {
		decompressed, err := decompressGZip(payload)

		if err != nil {
			ds.dispatchError("Failed to decompress metadata: " + err.Error())
			return
		}

		metadata = decompressed
	}

	ds.beginCallbackSync()

	if ds.MetadataReceivedCallback != nil {
		ds.MetadataReceivedCallback(metadata)
	}

	ds.endCallbackSync()
}

// openUDPDataChannel binds a local UDP socket on the given port and starts the goroutine that
// reads data packets arriving on the unreliable data channel.
func (ds *DataSubscriber) openUDPDataChannel(localPort uint16) error {
	addr, err := net.ResolveUDPAddr("udp", ":"+strconv.Itoa(int(localPort)))

	if err != nil {
		return err
	}

	conn, err := net.ListenUDP("udp", addr)

	if err != nil {
		return err
	}

	ds.udpConn = conn

	go ds.udpReadLoop(conn)

	return nil
}

func (ds *DataSubscriber) udpReadLoop(conn *net.UDPConn) {
	buffer := make([]byte, 65535)

	for {
		n, _, err := conn.ReadFromUDP(buffer)

		if err != nil {
			return
		}

		if n == 0 {
			continue
		}

		datagram := make([]byte, n)
		copy(datagram, buffer[:n])

		ds.handleUDPDatagram(datagram)
	}
}

// handleUDPDatagram decrypts, if necessary, and dispatches one self-contained data packet
// received over the UDP data channel, reusing the same parsing path as command-channel packets.
func (ds *DataSubscriber) handleUDPDatagram(datagram []byte) {
	if len(datagram) < 1 {
		return
	}

	flags := DataPacketFlagsEnum(datagram[0])
	body := datagram[1:]

	if flags&DataPacketFlags.CipherIndex != 0 {
		body = ds.decryptUDPBody(body, 1)
	} else {
		ds.cipherMutex.RLock()
		keyed := ds.cipherKeysSet
		ds.cipherMutex.RUnlock()

		if keyed {
			body = ds.decryptUDPBody(body, 0)
		}
	}

	if body == nil {
		return
	}

	ds.handleDataPacket(append([]byte{byte(flags)}, body...))
}

func (ds *DataSubscriber) decryptUDPBody(body []byte, cipherIndex int) []byte {
	ds.cipherMutex.RLock()
	pair := ds.cipherKeys[cipherIndex]
	ds.cipherMutex.RUnlock()

	if len(pair.key) == 0 {
		return body
	}

	decrypted, err := decipherAES(pair.key, pair.iv, body)

	if err != nil {
		ds.dispatchError("Failed to decrypt UDP data packet: " + err.Error())
		return nil
	}

	unpadded, err := pkcs7Unpad(decrypted)

	if err != nil {
		ds.dispatchError("Failed to unpad UDP data packet: " + err.Error())
		return nil
	}

	return unpadded
}

func (ds *DataSubscriber) handleUpdateCipherKeys(data []byte) {
	pairs, err := decodeCipherKeys(data)

	if err != nil {
		ds.dispatchError("Failed to parse cipher keys: " + err.Error())
		return
	}

	ds.cipherMutex.Lock()
	ds.cipherKeys = pairs
	ds.cipherKeysSet = true
	ds.cipherMutex.Unlock()

	ds.SendServerCommand(ServerCommand.ConfirmNotification)
}

// RotateCipherKeys requests that the data publisher generate and distribute a fresh pair of
// UDP data channel cipher keys.
func (ds *DataSubscriber) RotateCipherKeys() {
	ds.SendServerCommand(ServerCommand.RotateCipherKeys)
}

func (ds *DataSubscriber) handleFailed(data []byte) {
	if len(data) == 0 {
		ds.dispatchError("Received failure response with no detail")
		return
	}

	message := ds.DecodeString(data[1:], uint32(len(data)-1))
	ds.dispatchError("Server command failed: " + message)
}

func (ds *DataSubscriber) handleUpdateSignalIndexCache(data []byte) {
	payload := data

	if ds.CompressSignalIndexCache {
		decompressed, err := decompressGZip(data)

		if err == nil {
			payload = decompressed
		}
	}

	cache := NewSignalIndexCache()
	var subscriberID guid.Guid

	if err := cache.decode(ds, payload, &subscriberID); err != nil {
		ds.dispatchError("Failed to parse signal index cache: " + err.Error())
		return
	}

	ds.subscriberID = subscriberID

	ds.signalIndexCacheMutex.Lock()
	nextIndex := (atomic.LoadInt32(&ds.cacheIndex) + 1) & 1
	ds.signalIndexCache[nextIndex] = cache
	atomic.StoreInt32(&ds.cacheIndex, nextIndex)
	ds.signalIndexCacheMutex.Unlock()

	ds.subscribed.Set()

	ds.SendServerCommand(ServerCommand.ConfirmSignalIndexCache)

	ds.beginCallbackSync()

	if ds.SubscriptionUpdatedCallback != nil {
		ds.SubscriptionUpdatedCallback(cache)
	}

	ds.endCallbackSync()
}

func (ds *DataSubscriber) handleUpdateBaseTimes(data []byte) {
	if len(data) < 24 {
		return
	}

	atomic.StoreInt32(&ds.timeIndex, 0)
	ds.baseTimeOffsets[0] = int64(binary.BigEndian.Uint64(data[8:16]))
	ds.baseTimeOffsets[1] = int64(binary.BigEndian.Uint64(data[16:24]))
}

func (ds *DataSubscriber) handleBufferBlock(data []byte) {
	if len(data) < 20 {
		return
	}

	sequenceNumber := binary.BigEndian.Uint32(data)
	signalIndex := int32(binary.BigEndian.Uint32(data[4:]))
	buffer := make([]byte, len(data)-8)
	copy(buffer, data[8:])

	cache := ds.ActiveSignalIndexCache()
	signalID := cache.SignalID(signalIndex)

	block := BufferBlock{SignalID: signalID, Buffer: buffer}

	ds.beginCallbackSync()

	if ds.NewBufferBlocksCallback != nil {
		ds.NewBufferBlocksCallback([]BufferBlock{block})
	}

	ds.endCallbackSync()

	payload := make([]byte, 4)
	binary.BigEndian.PutUint32(payload, sequenceNumber)
	ds.SendServerCommandWithPayload(ServerCommand.ConfirmBufferBlock, payload)
}

//gocyclo:ignore
func (ds *DataSubscriber) handleDataPacket(data []byte) {
	atomic.AddUint64(&ds.totalDataChannelBytesReceived, uint64(len(data)))

	if len(data) < 1 {
		return
	}

	flags := DataPacketFlagsEnum(data[0])
	offset := 1

	if len(data) < offset+4 {
		return
	}

	count := binary.BigEndian.Uint32(data[offset:])
	offset += 4

	cacheIndex := int32(0)

	if (flags & DataPacketFlags.CipherIndex) != 0 {
		cacheIndex = 1
	}

	ds.signalIndexCacheMutex.RLock()
	cache := ds.signalIndexCache[cacheIndex]
	ds.signalIndexCacheMutex.RUnlock()

	includeTime := ds.subscriptionInfo.IncludeTime
	useMillisecondResolution := ds.subscriptionInfo.UseMillisecondResolution

	measurements := make([]Measurement, 0, count)

	if (flags & DataPacketFlags.Compressed) != 0 {
		if cache.tsscDecoder == nil {
			cache.tsscDecoder = tssc.NewDecoder(cache.MaxSignalIndex())
		}

		cache.tsscDecoder.SetBuffer(data[offset:])

		var id int32
		var timestamp int64
		var stateFlags uint32
		var value float32

		for {
			ok, err := cache.tsscDecoder.TryGetMeasurement(&id, &timestamp, &stateFlags, &value)

			if err != nil {
				ds.dispatchError("TSSC decode error: " + err.Error())
				return
			}

			if !ok {
				break
			}

			// Measurements referring to an index missing from the cache are dropped
			if !cache.Contains(id) {
				continue
			}

			measurements = append(measurements, Measurement{
				SignalID:  cache.SignalID(id),
				Value:     float64(value),
				Timestamp: ticks.Ticks(timestamp),
				Flags:     StateFlagsEnum(stateFlags),
			})
		}
	} else {
		remaining := data[offset:]

		for i := uint32(0); i < count && len(remaining) > 0; i++ {
			cm, n, err := NewCompactMeasurement(includeTime, useMillisecondResolution, &ds.baseTimeOffsets, remaining)

			if err != nil {
				ds.dispatchError("Compact measurement decode error: " + err.Error())
				return
			}

			remaining = remaining[n:]

			// Measurements referring to an index missing from the cache are dropped
			if !cache.Contains(int32(cm.SignalIndex)) {
				continue
			}

			measurements = append(measurements, cm.Expand(cache))
		}
	}

	atomic.AddUint64(&ds.totalMeasurementsReceived, uint64(len(measurements)))

	ds.beginCallbackSync()

	if ds.NewMeasurementsCallback != nil && len(measurements) > 0 {
		ds.NewMeasurementsCallback(measurements)
	}

	ds.endCallbackSync()
}

func (ds *DataSubscriber) dispatchError(message string) {
	ds.beginCallbackSync()

	if ds.ErrorMessageCallback != nil {
		ds.ErrorMessageCallback(message)
	}

	ds.endCallbackSync()
}

func boolString(value bool) string {
	if value {
		return "true"
	}

	return "false"
}

func floatString(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
