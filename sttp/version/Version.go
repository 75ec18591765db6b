//******************************************************************************************************
//  Version.go - Gbtc
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
//  09/14/2021 - J. Ritchie Carroll
//       Generated original version of source code.
//
//******************************************************************************************************

package version

const (
	// STTPSource defines the STTP library API title used for data subscriber identification.
	STTPSource = "STTP Go Library"

	// STTPVersion defines the STTP library API version used for data subscriber identification.
	STTPVersion = "0.7.0"

	// STTPUpdatedOn defines when the STTP library API was last updated used for data subscriber identification.
	STTPUpdatedOn = "2022-07-14"
)
