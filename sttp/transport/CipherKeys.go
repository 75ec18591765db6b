//******************************************************************************************************
//  CipherKeys.go - Gbtc
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
	"crypto/aes"
	"crypto/rand"
	"encoding/binary"
	"errors"
)

// cipherKeyPair holds a single AES-256 key and CBC initialization vector used to encrypt or
// decrypt UDP data channel payloads for one of a connection's two active cipher slots.
type cipherKeyPair struct {
	key []byte
	iv  []byte
}

// newCipherKeyPair generates a fresh random AES-256 key and IV pair.
func newCipherKeyPair() (cipherKeyPair, error) {
	key := make([]byte, 32)
	iv := make([]byte, aes.BlockSize)

	if _, err := rand.Read(key); err != nil {
		return cipherKeyPair{}, err
	}

	if _, err := rand.Read(iv); err != nil {
		return cipherKeyPair{}, err
	}

	return cipherKeyPair{key: key, iv: iv}, nil
}

// encodeCipherKeys serializes a pair of cipherKeyPair values, i.e., the even and odd cipher
// index slots, as [u32 keyLen][key][u32 ivLen][iv] repeated for each slot.
func encodeCipherKeys(pairs [2]cipherKeyPair) []byte {
	var buffer []byte

	for _, pair := range pairs {
		entry := make([]byte, 4+len(pair.key)+4+len(pair.iv))
		offset := 0

		binary.BigEndian.PutUint32(entry[offset:], uint32(len(pair.key)))
		offset += 4
		copy(entry[offset:], pair.key)
		offset += len(pair.key)

		binary.BigEndian.PutUint32(entry[offset:], uint32(len(pair.iv)))
		offset += 4
		copy(entry[offset:], pair.iv)

		buffer = append(buffer, entry...)
	}

	return buffer
}

// decodeCipherKeys parses the wire format produced by encodeCipherKeys.
func decodeCipherKeys(buffer []byte) ([2]cipherKeyPair, error) {
	var pairs [2]cipherKeyPair
	offset := 0

	for i := 0; i < 2; i++ {
		if len(buffer) < offset+4 {
			return pairs, errors.New("not enough buffer provided to parse cipher keys")
		}

		keyLen := int(binary.BigEndian.Uint32(buffer[offset:]))
		offset += 4

		if len(buffer) < offset+keyLen+4 {
			return pairs, errors.New("not enough buffer provided to parse cipher keys")
		}

		key := make([]byte, keyLen)
		copy(key, buffer[offset:offset+keyLen])
		offset += keyLen

		ivLen := int(binary.BigEndian.Uint32(buffer[offset:]))
		offset += 4

		if len(buffer) < offset+ivLen {
			return pairs, errors.New("not enough buffer provided to parse cipher keys")
		}

		iv := make([]byte, ivLen)
		copy(iv, buffer[offset:offset+ivLen])
		offset += ivLen

		pairs[i] = cipherKeyPair{key: key, iv: iv}
	}

	return pairs, nil
}

// pkcs7Pad pads data out to a multiple of the AES block size, as required by encipherAES/
// decipherAES's CBC mode, recording the padding length in the final byte.
func pkcs7Pad(data []byte) []byte {
	padLen := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)

	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	return padded
}

// pkcs7Unpad removes padding added by pkcs7Pad.
func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, errors.New("invalid padded cipher text length")
	}

	padLen := int(data[len(data)-1])

	if padLen == 0 || padLen > aes.BlockSize || padLen > len(data) {
		return nil, errors.New("invalid padding")
	}

	return data[:len(data)-padLen], nil
}
