//******************************************************************************************************
//  CipherRotation_test.go - Gbtc
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
	"bytes"
	"net"
	"testing"
)

// decryptWithSlot is a test helper that decrypts a UDP data packet body using the cipher pair
// currently installed in the given slot, mirroring DataSubscriber.decryptUDPBody.
func decryptWithSlot(t *testing.T, sc *SubscriberConnection, slot int32, ciphertext []byte) []byte {
	sc.cipherMutex.RLock()
	pair := sc.cipherKeys[slot]
	sc.cipherMutex.RUnlock()

	decrypted, err := decipherAES(pair.key, pair.iv, ciphertext)
	if err != nil {
		t.Fatal("decryptWithSlot: decrypt failed: " + err.Error())
	}

	unpadded, err := pkcs7Unpad(decrypted)
	if err != nil {
		t.Fatal("decryptWithSlot: unpad failed: " + err.Error())
	}

	return unpadded
}

func TestCipherRotationFlipsActiveSlotOnceAcknowledged(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	sc := NewSubscriberConnection(serverConn)

	if err := sc.initializeCipherKeys(); err != nil {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: initializeCipherKeys failed: " + err.Error())
	}

	firstPayload := []byte("first batch of 1000 measurements")

	encryptedBefore, indexBefore, err := sc.encryptForUDP(firstPayload)
	if err != nil {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: encrypt before rotation failed: " + err.Error())
	}

	if indexBefore != 0 {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: expected initial active slot to be 0")
	}

	if !bytes.Equal(decryptWithSlot(t, sc, 0, encryptedBefore), firstPayload) {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: pre-rotation payload did not decrypt with slot 0")
	}

	if err := sc.rotateCipherKeys(); err != nil {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: rotateCipherKeys failed: " + err.Error())
	}

	defer sc.acknowledgeCipherRotation() // stop any still-armed timer at test end

	// Until acknowledged, the active slot selector must not have moved.
	_, indexDuringPending, err := sc.encryptForUDP(firstPayload)
	if err != nil {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: encrypt during pending rotation failed: " + err.Error())
	}

	if indexDuringPending != 0 {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: active slot moved before acknowledgement")
	}

	sc.acknowledgeCipherRotation()

	secondPayload := []byte("second batch of 1000 measurements")

	encryptedAfter, indexAfter, err := sc.encryptForUDP(secondPayload)
	if err != nil {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: encrypt after rotation failed: " + err.Error())
	}

	if indexAfter != 1 {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: expected active slot to flip to 1 after acknowledgement")
	}

	if !bytes.Equal(decryptWithSlot(t, sc, 1, encryptedAfter), secondPayload) {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: post-rotation payload did not decrypt with slot 1")
	}

	// The slot-0 key must be untouched by the rotation (only the inactive slot was regenerated).
	if !bytes.Equal(decryptWithSlot(t, sc, 0, encryptedBefore), firstPayload) {
		t.Fatal("TestCipherRotationFlipsActiveSlotOnceAcknowledged: slot 0 key was mutated by rotation")
	}
}

func TestAcknowledgeCipherRotationWithoutPendingRotationIsNoop(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	sc := NewSubscriberConnection(serverConn)

	// No rotation was ever started, so acknowledging must not panic and must leave slot 0 active.
	sc.acknowledgeCipherRotation()

	_, index, err := sc.encryptForUDP([]byte("x"))
	if err != nil {
		t.Fatal("TestAcknowledgeCipherRotationWithoutPendingRotationIsNoop: encrypt failed: " + err.Error())
	}

	if index != 0 {
		t.Fatal("TestAcknowledgeCipherRotationWithoutPendingRotationIsNoop: expected active slot to remain 0")
	}
}
