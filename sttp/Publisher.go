//******************************************************************************************************
//  Publisher.go - Gbtc
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

package sttp

import (
	"fmt"
	"os"
	"sync"

	"github.com/sttp/goapi/sttp/data"
	"github.com/sttp/goapi/sttp/transport"
)

// Publisher represents an STTP data publisher.
//
// The Publisher exists as a simplified implementation of the DataPublisher found in the
// transport namespace. The Publisher is intended to simplify common uses of STTP data
// publication and maintains an internal instance of the DataPublisher for connection
// acceptance, metadata service, and measurement routing.
type Publisher struct {
	// Configuration reference
	config *PublisherConfig

	// DataPublisher reference
	dp *transport.DataPublisher

	// Callback references
	statusMessageLogger        func(message string)
	errorMessageLogger         func(message string)
	clientConnectedReceiver    func(connection *transport.SubscriberConnection)
	clientDisconnectedReceiver func(connection *transport.SubscriberConnection)

	// Lock used to synchronize console writes
	consoleLock sync.Mutex

	assigningHandlerMutex sync.RWMutex
}

// NewPublisher creates a new Publisher using the provided PublisherConfig. Set config to nil
// for default values.
func NewPublisher(config *PublisherConfig) *Publisher {
	if config == nil {
		config = NewPublisherConfig()
	}

	pb := Publisher{
		config: config,
		dp:     transport.NewDataPublisher(),
	}

	pb.statusMessageLogger = pb.DefaultStatusMessageLogger
	pb.errorMessageLogger = pb.DefaultErrorMessageLogger

	dp := pb.dataPublisher()
	dp.PrimaryTableName = config.PrimaryTableName
	dp.TableIDFields = config.TableIDFields
	dp.StatusMessageCallback = pb.statusMessageLogger
	dp.ErrorMessageCallback = pb.errorMessageLogger
	dp.ClientConnectedCallback = pb.handleClientConnected
	dp.ClientDisconnectedCallback = pb.handleClientDisconnected

	return &pb
}

// dataPublisher gets a reference to the internal DataPublisher instance.
func (pb *Publisher) dataPublisher() *transport.DataPublisher {
	if pb.dp == nil {
		panic("Internal DataPublisher instance has not been initialized. Make sure to use NewPublisher.")
	}

	return pb.dp
}

// Start begins listening for subscriber connections on the given TCP endpoint, e.g., ":7165".
// Payload, metadata and signal-index-cache compression are set per connection from each
// subscriber's DefineOperationalModes request; PublisherConfig's compression flags are not read.
func (pb *Publisher) Start(endpoint string) error {
	return pb.dataPublisher().Start(endpoint)
}

// Stop halts the accept loop and closes every active subscriber connection.
func (pb *Publisher) Stop() {
	pb.dataPublisher().Stop()
}

// DefineMetadata installs the metadata DataSet served to subscribers requesting a metadata
// refresh and used to resolve subscriber filter expressions.
func (pb *Publisher) DefineMetadata(dataSet *data.DataSet) {
	pb.dataPublisher().DefineMetadata(dataSet)
}

// Metadata gets the DataSet currently served by the publisher.
func (pb *Publisher) Metadata() *data.DataSet {
	return pb.dataPublisher().Metadata()
}

// ConnectionCount gets the number of currently active subscriber connections.
func (pb *Publisher) ConnectionCount() int {
	return pb.dataPublisher().ConnectionCount()
}

// PublishMeasurements routes a batch of measurements to every subscriber connection whose
// signal set intersects the batch.
func (pb *Publisher) PublishMeasurements(measurements []transport.Measurement) {
	pb.dataPublisher().PublishMeasurements(measurements)
}

// beginCallbackAssignment informs Publisher that a callback change has been initiated.
func (pb *Publisher) beginCallbackAssignment() {
	pb.assigningHandlerMutex.Lock()
}

// endCallbackAssignment informs Publisher that a callback change has been completed.
func (pb *Publisher) endCallbackAssignment() {
	pb.assigningHandlerMutex.Unlock()
}

// beginCallbackSync begins a callback synchronization operation.
func (pb *Publisher) beginCallbackSync() {
	pb.assigningHandlerMutex.RLock()
}

// endCallbackSync ends a callback synchronization operation.
func (pb *Publisher) endCallbackSync() {
	pb.assigningHandlerMutex.RUnlock()
}

// StatusMessage executes the defined status message logger callback.
func (pb *Publisher) StatusMessage(message string) {
	pb.beginCallbackSync()

	if pb.statusMessageLogger != nil {
		pb.statusMessageLogger(message)
	}

	pb.endCallbackSync()
}

// ErrorMessage executes the defined error message logger callback.
func (pb *Publisher) ErrorMessage(message string) {
	pb.beginCallbackSync()

	if pb.errorMessageLogger != nil {
		pb.errorMessageLogger(message)
	}

	pb.endCallbackSync()
}

func (pb *Publisher) handleClientConnected(connection *transport.SubscriberConnection) {
	pb.beginCallbackSync()

	if pb.clientConnectedReceiver != nil {
		pb.clientConnectedReceiver(connection)
	}

	pb.endCallbackSync()
}

func (pb *Publisher) handleClientDisconnected(connection *transport.SubscriberConnection) {
	pb.beginCallbackSync()

	if pb.clientDisconnectedReceiver != nil {
		pb.clientDisconnectedReceiver(connection)
	}

	pb.endCallbackSync()
}

// DefaultStatusMessageLogger implements the default handler for the statusMessage callback.
// Default implementation synchronously writes output to stdio. Logging is recommended.
func (pb *Publisher) DefaultStatusMessageLogger(message string) {
	pb.consoleLock.Lock()
	defer pb.consoleLock.Unlock()
	fmt.Println(message)
}

// DefaultErrorMessageLogger implements the default handler for the errorMessage callback.
// Default implementation synchronously writes output to stderr. Logging is recommended.
func (pb *Publisher) DefaultErrorMessageLogger(message string) {
	pb.consoleLock.Lock()
	defer pb.consoleLock.Unlock()
	fmt.Fprintln(os.Stderr, message)
}

// SetStatusMessageLogger defines the callback that handles informational message logging.
// Assignment will take effect immediately, even while subscribers are connected.
func (pb *Publisher) SetStatusMessageLogger(callback func(message string)) {
	pb.beginCallbackAssignment()
	defer pb.endCallbackAssignment()

	pb.statusMessageLogger = callback
}

// SetErrorMessageLogger defines the callback that handles error message logging.
// Assignment will take effect immediately, even while subscribers are connected.
func (pb *Publisher) SetErrorMessageLogger(callback func(message string)) {
	pb.beginCallbackAssignment()
	defer pb.endCallbackAssignment()

	pb.errorMessageLogger = callback
}

// SetClientConnectedReceiver defines the callback that handles notification that a subscriber
// connection has completed its handshake.
// Assignment will take effect immediately, even while subscribers are connected.
func (pb *Publisher) SetClientConnectedReceiver(callback func(connection *transport.SubscriberConnection)) {
	pb.beginCallbackAssignment()
	defer pb.endCallbackAssignment()

	pb.clientConnectedReceiver = callback
}

// SetClientDisconnectedReceiver defines the callback that handles notification that a subscriber
// connection has closed.
// Assignment will take effect immediately, even while subscribers are connected.
func (pb *Publisher) SetClientDisconnectedReceiver(callback func(connection *transport.SubscriberConnection)) {
	pb.beginCallbackAssignment()
	defer pb.endCallbackAssignment()

	pb.clientDisconnectedReceiver = callback
}
