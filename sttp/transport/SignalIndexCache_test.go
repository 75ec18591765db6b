//******************************************************************************************************
//  SignalIndexCache_test.go - Gbtc
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
	"net"
	"testing"

	"github.com/sttp/goapi/sttp/guid"
)

func TestSignalIndexCacheEncodeDecodeRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	sc := NewSubscriberConnection(serverConn)

	publisherCache := NewSignalIndexCache()
	firstID := guid.New()
	secondID := guid.New()

	publisherCache.addPublisherRecord(0, firstID, "UNIT:ST1", 1001)
	publisherCache.addPublisherRecord(1, secondID, "UNIT:ST2", 1002)

	subscriberID := guid.New()
	encoded := publisherCache.Encode(sc, subscriberID)

	ds := NewDataSubscriber()
	decodedCache := NewSignalIndexCache()
	var decodedSubscriberID guid.Guid

	if err := decodedCache.decode(ds, encoded, &decodedSubscriberID); err != nil {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: decode failed: " + err.Error())
	}

	if decodedSubscriberID != subscriberID {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: subscriber ID mismatch")
	}

	if decodedCache.Count() != 2 {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: expected 2 records")
	}

	if !decodedCache.Contains(0) || !decodedCache.Contains(1) {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: expected signal indexes 0 and 1 to be present")
	}

	if decodedCache.SignalID(0) != firstID {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: signal ID mismatch for index 0")
	}

	if decodedCache.SignalID(1) != secondID {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: signal ID mismatch for index 1")
	}

	if decodedCache.Source(0) != "UNIT:ST1" || decodedCache.Source(1) != "UNIT:ST2" {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: source mismatch")
	}

	if decodedCache.ID(0) != 1001 || decodedCache.ID(1) != 1002 {
		t.Fatal("TestSignalIndexCacheEncodeDecodeRoundTrip: ID mismatch")
	}
}

func TestSignalIndexCacheClear(t *testing.T) {
	cache := NewSignalIndexCache()
	cache.addPublisherRecord(0, guid.New(), "UNIT:ST1", 1)

	if cache.Count() != 1 {
		t.Fatal("TestSignalIndexCacheClear: expected 1 record before clear")
	}

	cache.clear()

	if cache.Count() != 0 {
		t.Fatal("TestSignalIndexCacheClear: expected 0 records after clear")
	}

	if cache.MaxSignalIndex() != 0 {
		t.Fatal("TestSignalIndexCacheClear: expected max signal index reset to 0")
	}

	if cache.Contains(0) {
		t.Fatal("TestSignalIndexCacheClear: expected signal index 0 to be absent after clear")
	}
}
