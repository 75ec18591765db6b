//******************************************************************************************************
//  DataPublisher.go - Gbtc
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
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sttp/goapi/sttp/data"
	"github.com/sttp/goapi/sttp/guid"
	"github.com/sttp/goapi/sttp/ticks"
	"github.com/sttp/goapi/sttp/transport/tssc"
	"github.com/tevino/abool/v2"
)

// DataPublisher represents a server-side STTP engine: it accepts subscriber connections,
// resolves each connection's subscribed signal set against its metadata, and routes published
// measurements to every connection whose subscription matches.
type DataPublisher struct {
	// StatusMessageCallback is invoked to surface non-fatal diagnostic information.
	StatusMessageCallback func(string)
	// ErrorMessageCallback is invoked to surface non-fatal errors.
	ErrorMessageCallback func(string)
	// ClientConnectedCallback is invoked once a subscriber connection has completed its handshake.
	ClientConnectedCallback func(*SubscriberConnection)
	// ClientDisconnectedCallback is invoked once a subscriber connection has closed.
	ClientDisconnectedCallback func(*SubscriberConnection)

	// PrimaryTableName defines the metadata table searched by direct signal identification and by
	// filter expressions that do not specify a table name.
	PrimaryTableName string
	// TableIDFields defines the ID field names used to resolve PrimaryTableName filter expressions.
	TableIDFields *data.TableIDFields

	dataSetValue atomic.Value // holds *data.DataSet

	listener net.Listener
	running  abool.AtomicBool

	connectionsMutex sync.RWMutex
	connections      map[guid.Guid]*SubscriberConnection

	startTime ticks.Ticks
}

// NewDataPublisher creates a new DataPublisher with an empty metadata DataSet.
func NewDataPublisher() *DataPublisher {
	dp := &DataPublisher{
		PrimaryTableName: "ActiveMeasurements",
		TableIDFields:    data.DefaultTableIDFields,
		connections:      make(map[guid.Guid]*SubscriberConnection),
	}

	dp.dataSetValue.Store(data.NewDataSet())

	return dp
}

// DefineMetadata installs a new metadata DataSet for the publisher to serve and to resolve
// subscriber filter expressions against. The swap is copy-on-write: connections already holding
// a reference to the prior DataSet are unaffected until they next request a metadata refresh.
func (dp *DataPublisher) DefineMetadata(dataSet *data.DataSet) {
	dp.dataSetValue.Store(dataSet)
}

// Metadata gets the DataSet currently served by the publisher.
func (dp *DataPublisher) Metadata() *data.DataSet {
	return dp.dataSetValue.Load().(*data.DataSet)
}

// Start begins listening for subscriber connections on the given TCP endpoint, e.g., ":7165".
func (dp *DataPublisher) Start(endpoint string) error {
	listener, err := net.Listen("tcp", endpoint)

	if err != nil {
		return err
	}

	dp.listener = listener
	dp.startTime = ticks.FromTime(time.Now())
	dp.running.Set()

	go dp.acceptLoop()

	return nil
}

// Stop halts the accept loop, closes every active subscriber connection, and releases the listener.
func (dp *DataPublisher) Stop() {
	if dp.running.IsNotSet() {
		return
	}

	dp.running.UnSet()

	if dp.listener != nil {
		dp.listener.Close()
	}

	dp.connectionsMutex.Lock()
	connections := make([]*SubscriberConnection, 0, len(dp.connections))

	for _, sc := range dp.connections {
		connections = append(connections, sc)
	}

	dp.connectionsMutex.Unlock()

	for _, sc := range connections {
		sc.Close()
	}
}

// ConnectionCount gets the number of currently active subscriber connections.
func (dp *DataPublisher) ConnectionCount() int {
	dp.connectionsMutex.RLock()
	defer dp.connectionsMutex.RUnlock()

	return len(dp.connections)
}

func (dp *DataPublisher) acceptLoop() {
	for {
		conn, err := dp.listener.Accept()

		if err != nil {
			if dp.running.IsSet() {
				dp.dispatchError("Accept failed: " + err.Error())
			}

			return
		}

		sc := NewSubscriberConnection(conn)
		sc.StatusMessageCallback = dp.StatusMessageCallback
		sc.ErrorMessageCallback = dp.ErrorMessageCallback
		sc.ConnectionTerminatedCallback = dp.handleConnectionTerminated

		dp.connectionsMutex.Lock()
		dp.connections[sc.ID] = sc
		dp.connectionsMutex.Unlock()

		sc.Start(dp)

		dp.dispatchStatus("Subscriber connected from " + sc.RemoteEndpoint)

		if dp.ClientConnectedCallback != nil {
			dp.ClientConnectedCallback(sc)
		}
	}
}

func (dp *DataPublisher) handleConnectionTerminated(sc *SubscriberConnection) {
	dp.connectionsMutex.Lock()
	delete(dp.connections, sc.ID)
	dp.connectionsMutex.Unlock()

	dp.dispatchStatus("Subscriber disconnected: " + sc.RemoteEndpoint)

	if dp.ClientDisconnectedCallback != nil {
		dp.ClientDisconnectedCallback(sc)
	}
}

// HandleMetadataRefresh implements SubscriberConnectionHandler: it serializes the current metadata
// DataSet, optionally gzip compressed, and replies with a Succeeded/MetadataRefresh response.
func (dp *DataPublisher) HandleMetadataRefresh(sc *SubscriberConnection) {
	payload := dp.Metadata().SerializeXml()

	if sc.compressMetadata {
		compressed, err := compressGZip(payload)

		if err != nil {
			dp.dispatchError("Failed to compress metadata: " + err.Error())
			return
		}

		payload = compressed
	}

	response := make([]byte, 1+len(payload))
	response[0] = byte(ServerCommand.MetadataRefresh)
	copy(response[1:], payload)

	sc.sendFrame(ServerResponse.Succeeded, response)
}

// HandleSubscribe implements SubscriberConnectionHandler: it resolves the subscriber's filter
// expression against the current metadata DataSet and installs the matching signal set.
func (dp *DataPublisher) HandleSubscribe(sc *SubscriberConnection, connectionString string) {
	settings := parseConnectionString(connectionString)

	filterExpression := extractFilterExpression(settings["assemblyinfo"])

	if len(filterExpression) == 0 {
		dp.dispatchError("Subscribe request from " + sc.RemoteEndpoint + " contained no filter expression")
		return
	}

	dataSet := dp.Metadata()

	parser, err := data.NewFilterExpressionParserForDataSet(dataSet, filterExpression, dp.PrimaryTableName, dp.TableIDFields, true)

	if err != nil {
		dp.dispatchError("Failed to parse filter expression from " + sc.RemoteEndpoint + ": " + err.Error())
		return
	}

	parser.TrackFilteredRows = true
	parser.TrackFilteredSignalIDs = true

	if err := parser.Evaluate(true, true); err != nil {
		dp.dispatchError("Failed to evaluate filter expression from " + sc.RemoteEndpoint + ": " + err.Error())
		return
	}

	signalIDSet := parser.FilteredSignalIDSet()
	records := dp.buildSignalIndexRecords(parser.FilteredRows())

	sc.SetSignalSet(signalIDSet, records)
	dp.sendSignalIndexCache(sc)

	if sc.useUDP {
		dp.establishUDPDataChannel(sc, settings["datachannel"])
	}

	rollover := ticks.FromTime(time.Now())
	sc.SendUpdateBaseTimes(int64(rollover), int64(rollover), 0)

	if len(records) > 0 {
		sc.SendDataStartTime(ticks.FromTime(time.Now()))
	}
}

// sendSignalIndexCache encodes a connection's newly-activated signal-index cache and pushes it as
// an unsolicited UpdateSignalIndexCache response, so the subscriber's own cache stays in sync with
// the routing engine's before any data packets referencing its signal indices are sent.
func (dp *DataPublisher) sendSignalIndexCache(sc *SubscriberConnection) {
	payload := sc.ActiveSignalIndexCache().Encode(sc, sc.ID)

	if sc.compressSignalIndexCache {
		compressed, err := compressGZip(payload)

		if err != nil {
			dp.dispatchError("Failed to compress signal index cache for " + sc.RemoteEndpoint + ": " + err.Error())
			return
		}

		payload = compressed
	}

	sc.sendFrame(ServerResponse.UpdateSignalIndexCache, payload)
}

// establishUDPDataChannel dials the subscriber's UDP endpoint, advertised in the nested
// dataChannel={localPort=N} connection-string fragment, and performs the initial cipher-key
// handshake so subsequent data packets on that connection can be sent encrypted over UDP.
func (dp *DataPublisher) establishUDPDataChannel(sc *SubscriberConnection, dataChannelSettings string) {
	if sc.udpConn != nil {
		return
	}

	settings := parseConnectionString(dataChannelSettings)

	port, err := strconv.ParseUint(settings["localport"], 10, 16)

	if err != nil || port == 0 {
		dp.dispatchError("Subscriber " + sc.RemoteEndpoint + " requested a UDP data channel without a valid local port")
		return
	}

	if err := sc.openUDPDataChannel(uint16(port)); err != nil {
		dp.dispatchError("Failed to establish UDP data channel to " + sc.RemoteEndpoint + ": " + err.Error())
		return
	}

	if err := sc.initializeCipherKeys(); err != nil {
		dp.dispatchError("Failed to send initial cipher keys to " + sc.RemoteEndpoint + ": " + err.Error())
	}
}

// buildSignalIndexRecords extracts the key measurement details needed to populate a connection's
// signal-index cache from the rows matched by a subscriber's filter expression.
func (dp *DataPublisher) buildSignalIndexRecords(rows []*data.DataRow) []signalIndexRecord {
	idFields := dp.TableIDFields
	records := make([]signalIndexRecord, 0, len(rows))

	for _, row := range rows {
		signalID, _, err := row.GuidValueByName(idFields.SignalIDFieldName)

		if err != nil {
			continue
		}

		source, id := parseMeasurementKey(row.ValueAsStringByName(idFields.MeasurementKeyFieldName))
		pointTag := row.ValueAsStringByName(idFields.PointTagFieldName)

		if len(source) == 0 {
			source = pointTag
		}

		records = append(records, signalIndexRecord{signalID: signalID, source: source, id: id})
	}

	return records
}

// parseMeasurementKey splits a "SOURCE:ID" formatted measurement key into its parts; if the key
// cannot be parsed, the entire input is treated as the source and id is returned as zero.
func parseMeasurementKey(key string) (source string, id uint64) {
	parts := strings.SplitN(key, ":", 2)

	if len(parts) == 2 {
		if parsed, err := strconv.ParseUint(parts[1], 10, 64); err == nil {
			return parts[0], parsed
		}
	}

	return key, 0
}

// HandleUnsubscribe implements SubscriberConnectionHandler: it clears the connection's signal set.
func (dp *DataPublisher) HandleUnsubscribe(sc *SubscriberConnection) {
	sc.SetSignalSet(make(guid.HashSet), nil)
}

// HandleRotateCipherKeys implements SubscriberConnectionHandler: it generates a fresh cipher key
// pair for the connection's inactive UDP slot and distributes it, pending acknowledgement.
func (dp *DataPublisher) HandleRotateCipherKeys(sc *SubscriberConnection) {
	sc.sendFrame(ServerResponse.Succeeded, []byte{byte(ServerCommand.RotateCipherKeys)})

	if !sc.useUDP {
		return
	}

	if err := sc.rotateCipherKeys(); err != nil {
		dp.dispatchError("Failed to rotate cipher keys for " + sc.RemoteEndpoint + ": " + err.Error())
	}
}

// PublishMeasurements routes a batch of measurements to every subscriber connection whose signal
// set intersects the batch, encoding each connection's subset using its negotiated wire format.
func (dp *DataPublisher) PublishMeasurements(measurements []Measurement) {
	if len(measurements) == 0 {
		return
	}

	batchSignalIDs := make(guid.HashSet, len(measurements))

	for i := range measurements {
		batchSignalIDs.Add(measurements[i].SignalID)
	}

	dp.connectionsMutex.RLock()
	connections := make([]*SubscriberConnection, 0, len(dp.connections))

	for _, sc := range dp.connections {
		connections = append(connections, sc)
	}

	dp.connectionsMutex.RUnlock()

	for _, sc := range connections {
		if !sc.IsSubscribed() {
			continue
		}

		signalSet := sc.SignalSet()

		if batchSignalIDs.Intersect(signalSet).Len() == 0 {
			continue
		}

		dp.publishToConnection(sc, measurements, signalSet)
	}
}

func (dp *DataPublisher) publishToConnection(sc *SubscriberConnection, measurements []Measurement, signalSet guid.HashSet) {
	cache := sc.ActiveSignalIndexCache()

	matched := make([]Measurement, 0, len(measurements))

	for i := range measurements {
		if signalSet.Contains(measurements[i].SignalID) {
			matched = append(matched, measurements[i])
		}
	}

	if len(matched) == 0 {
		return
	}

	var flags DataPacketFlagsEnum
	var payload []byte

	if sc.compressPayload {
		encoded, err := dp.encodeTSSC(sc, cache, matched)

		if err != nil {
			dp.dispatchError("TSSC encode error for " + sc.RemoteEndpoint + ": " + err.Error())
			return
		}

		flags |= DataPacketFlags.Compressed
		payload = encoded
	} else {
		payload = dp.encodeCompact(sc, cache, matched)
	}

	body := appendCount(uint32(len(matched)), payload)

	if sc.useUDP && sc.udpConn != nil {
		dp.sendUDPDataPacket(sc, flags, body)
		return
	}

	sc.sendFrame(ServerResponse.DataPacket, append([]byte{byte(flags)}, body...))
}

// sendUDPDataPacket encrypts, if cipher keys are established, and sends one data packet as a
// self-contained UDP datagram, setting DataPacketFlags.CipherIndex to the slot used.
func (dp *DataPublisher) sendUDPDataPacket(sc *SubscriberConnection, flags DataPacketFlagsEnum, body []byte) {
	encrypted, cipherIndex, err := sc.encryptForUDP(body)

	if err != nil {
		dp.dispatchError("Failed to encrypt UDP data packet for " + sc.RemoteEndpoint + ": " + err.Error())
		return
	}

	if cipherIndex == 1 {
		flags |= DataPacketFlags.CipherIndex
	}

	if err := sc.sendUDPDatagram(append([]byte{byte(flags)}, encrypted...)); err != nil {
		dp.dispatchError("Failed to send UDP data packet to " + sc.RemoteEndpoint + ": " + err.Error())
	}
}

func appendCount(count uint32, payload []byte) []byte {
	buffer := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(buffer, count)
	copy(buffer[4:], payload)
	return buffer
}

func (dp *DataPublisher) encodeCompact(sc *SubscriberConnection, cache *SignalIndexCache, measurements []Measurement) []byte {
	var buffer []byte

	for i := range measurements {
		m := &measurements[i]
		cm := CompactMeasurement{
			Value:       float32(m.Value),
			Timestamp:   m.Timestamp,
			SignalIndex: uint32(cache.SignalIndex(m.SignalID)),
			Flags:       m.Flags.mapToCompactFlags(),
		}

		entry := make([]byte, 17)
		n := cm.Marshal(entry, sc.includeTime, sc.useMillisecondResolution, &sc.baseTimeOffsets)
		buffer = append(buffer, entry[:n]...)
	}

	return buffer
}

func (dp *DataPublisher) encodeTSSC(sc *SubscriberConnection, cache *SignalIndexCache, measurements []Measurement) ([]byte, error) {
	sc.tsscEncoderMutex.Lock()
	defer sc.tsscEncoderMutex.Unlock()

	if sc.tsscEncoder == nil {
		sc.tsscEncoder = tssc.NewEncoder(cache.MaxSignalIndex())
	}

	workingBuffer := make([]byte, 32*1024)
	sc.tsscEncoder.SetBuffer(workingBuffer)

	for i := range measurements {
		m := &measurements[i]
		signalIndex := cache.SignalIndex(m.SignalID)

		if _, err := sc.tsscEncoder.TryAddMeasurement(signalIndex, int64(m.Timestamp), uint32(m.Flags), float32(m.Value)); err != nil {
			return nil, err
		}
	}

	length := sc.tsscEncoder.FinishBlock()

	return workingBuffer[:length], nil
}

func (dp *DataPublisher) dispatchStatus(message string) {
	if dp.StatusMessageCallback != nil {
		dp.StatusMessageCallback(message)
	}
}

func (dp *DataPublisher) dispatchError(message string) {
	if dp.ErrorMessageCallback != nil {
		dp.ErrorMessageCallback(message)
	}
}

// parseConnectionString splits an STTP semicolon-delimited connection string into a lower-cased
// key to value map, treating a brace-enclosed value, e.g., assemblyInfo={...}, as a single field.
func parseConnectionString(s string) map[string]string {
	settings := make(map[string]string)
	n := len(s)
	i := 0

	for i < n {
		for i < n && s[i] == ';' {
			i++
		}

		if i >= n {
			break
		}

		start := i

		for i < n && s[i] != '=' && s[i] != ';' {
			i++
		}

		key := strings.ToLower(strings.TrimSpace(s[start:i]))

		if i >= n || s[i] != '=' {
			settings[key] = ""
			continue
		}

		i++ // consume '='

		if i < n && s[i] == '{' {
			depth := 1
			i++
			valueStart := i

			for i < n && depth > 0 {
				switch s[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}

			value := s[valueStart:i]

			if len(value) > 0 {
				value = value[:len(value)-1]
			}

			settings[key] = value

			for i < n && s[i] != ';' {
				i++
			}

			continue
		}

		valueStart := i

		for i < n && s[i] != ';' {
			i++
		}

		settings[key] = strings.TrimSpace(s[valueStart:i])
	}

	return settings
}

// extractFilterExpression pulls the FilterExpression value out of an assemblyInfo connection
// string fragment, e.g., "FilterExpression=FILTER ActiveMeasurements WHERE ...".
func extractFilterExpression(assemblyInfo string) string {
	const prefix = "filterexpression="

	lower := strings.ToLower(assemblyInfo)
	index := strings.Index(lower, prefix)

	if index < 0 {
		return ""
	}

	return strings.TrimSpace(assemblyInfo[index+len(prefix):])
}

