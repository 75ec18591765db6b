//******************************************************************************************************
//  PublisherConfig.go - Gbtc
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

import "github.com/sttp/goapi/sttp/data"

// PublisherConfig defines the STTP publication parameters. The compression flags are not read by
// Publisher: each subscriber's DefineOperationalModes request sets compression for its own connection.
type PublisherConfig struct {
	// PrimaryTableName defines the metadata table searched when a subscriber's filter expression
	// does not specify a table name, e.g., "ActiveMeasurements".
	PrimaryTableName string

	// TableIDFields defines the ID field names used to resolve PrimaryTableName filter expressions.
	// Set to nil to use data.DefaultTableIDFields.
	TableIDFields *data.TableIDFields

	// CompressPayloadData records whether payload data is to be compressed.
	CompressPayloadData bool

	// CompressMetadata records whether the metadata transfer is to be compressed.
	CompressMetadata bool

	// CompressSignalIndexCache records whether the signal index cache is to be compressed.
	CompressSignalIndexCache bool
}

// publisherConfigDefaults define the default values for an STTP PublisherConfig.
var publisherConfigDefaults = PublisherConfig{
	PrimaryTableName:         "ActiveMeasurements",
	TableIDFields:            data.DefaultTableIDFields,
	CompressPayloadData:      true,
	CompressMetadata:         true,
	CompressSignalIndexCache: true,
}

// NewPublisherConfig creates a new PublisherConfig instance initialized with default values.
func NewPublisherConfig() *PublisherConfig {
	config := publisherConfigDefaults
	return &config
}
