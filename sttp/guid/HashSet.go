//******************************************************************************************************
//  HashSet.go - Gbtc
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

package guid

// HashSet defines a set of unique Guid values with O(1) membership tests, used to
// represent a resolved subscription signal set or any other unordered Guid collection.
type HashSet map[Guid]struct{}

// NewHashSet creates a HashSet from a slice of Guid values, silently collapsing duplicates.
func NewHashSet(guids []Guid) HashSet {
	set := make(HashSet, len(guids))

	for _, id := range guids {
		set[id] = struct{}{}
	}

	return set
}

// Add inserts a Guid into the HashSet, returning true if the Guid was not already present.
func (hs HashSet) Add(id Guid) bool {
	if _, ok := hs[id]; ok {
		return false
	}

	hs[id] = struct{}{}
	return true
}

// Remove deletes a Guid from the HashSet, if present.
func (hs HashSet) Remove(id Guid) {
	delete(hs, id)
}

// Contains determines if the specified Guid exists within the HashSet.
func (hs HashSet) Contains(id Guid) bool {
	_, ok := hs[id]
	return ok
}

// Len returns the number of unique Guid values in the HashSet.
func (hs HashSet) Len() int {
	return len(hs)
}

// Slice returns the contents of the HashSet as a Guid slice in unspecified order.
func (hs HashSet) Slice() []Guid {
	values := make([]Guid, 0, len(hs))

	for id := range hs {
		values = append(values, id)
	}

	return values
}

// Intersect returns a new HashSet containing only the Guid values present in both sets.
func (hs HashSet) Intersect(other HashSet) HashSet {
	result := make(HashSet)

	small, large := hs, other

	if len(large) < len(small) {
		small, large = large, small
	}

	for id := range small {
		if large.Contains(id) {
			result.Add(id)
		}
	}

	return result
}
