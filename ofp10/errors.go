/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package ofp10

import (
	"github.com/k-vswitch/ofproto/wire"
)

// Error types.
const (
	ErrorTypeHelloFailed uint16 = iota
	ErrorTypeBadRequest
	ErrorTypeBadAction
	ErrorTypeFlowModFailed
	ErrorTypePortModFailed
	ErrorTypeQueueOpFailed
)

// Hello failed codes.
const (
	HelloFailedIncompatible uint16 = iota
	HelloFailedEPerm
)

// Bad request codes.
const (
	BadRequestBadVersion uint16 = iota
	BadRequestBadType
	BadRequestBadStat
	BadRequestBadVendor
	BadRequestBadSubtype
	BadRequestEPerm
	BadRequestBadLen
	BadRequestBufferEmpty
	BadRequestBufferUnknown
)

// Bad action codes.
const (
	BadActionBadType uint16 = iota
	BadActionBadLen
	BadActionBadVendor
	BadActionBadVendorType
	BadActionBadOutPort
	BadActionBadArgument
	BadActionEPerm
	BadActionTooMany
	BadActionBadQueue
)

// Flow mod failed codes.
const (
	FlowModFailedAllTablesFull uint16 = iota
	FlowModFailedOverlap
	FlowModFailedEPerm
	FlowModFailedBadEmergTimeout
	FlowModFailedBadCommand
	FlowModFailedUnsupported
)

// Port mod failed codes.
const (
	PortModFailedBadPort uint16 = iota
	PortModFailedBadHwAddr
)

// Queue op failed codes.
const (
	QueueOpFailedBadPort uint16 = iota
	QueueOpFailedBadQueue
	QueueOpFailedEPerm
)

var (
	badRequestBadLen = wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadLen}

	messageFamily = wire.Family{
		Kind:       "message",
		BadType:    wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:     badRequestBadLen,
		BadVersion: wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadVersion},
	}

	statsFamily = wire.Family{
		Kind:    "stats",
		BadType: wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadStat},
		BadLen:  badRequestBadLen,
	}

	actionFamily = wire.Family{
		Kind:    "action",
		BadType: wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadType},
		BadLen:  wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadLen},
	}

	queuePropertyFamily = wire.Family{
		Kind:        "queue property",
		BadType:     wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:      badRequestBadLen,
		SkipUnknown: true,
	}

	// structFamily covers the structures without a discriminant: ports,
	// stats entries and queues.
	structFamily = wire.Family{
		Kind:    "struct",
		BadType: wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:  badRequestBadLen,
	}
)

// Protocol error pairs callers commonly test for.
var (
	CodeBadActionType  = actionFamily.BadType
	CodeBadActionLen   = actionFamily.BadLen
	CodeBadMessageType = messageFamily.BadType
	CodeBadStatsType   = statsFamily.BadType
	CodeBadVersion     = messageFamily.BadVersion
	CodeBadLen         = badRequestBadLen
)
