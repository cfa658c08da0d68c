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

package ofp13

import (
	"github.com/k-vswitch/ofproto/wire"
)

// Error types.
const (
	ErrorTypeHelloFailed uint16 = iota
	ErrorTypeBadRequest
	ErrorTypeBadAction
	ErrorTypeBadInstruction
	ErrorTypeBadMatch
	ErrorTypeFlowModFailed
	ErrorTypeGroupModFailed
	ErrorTypePortModFailed
	ErrorTypeTableModFailed
	ErrorTypeQueueOpFailed
	ErrorTypeSwitchConfigFailed
	ErrorTypeRoleRequestFailed
	ErrorTypeMeterModFailed
	ErrorTypeTableFeaturesFailed
	ErrorTypeExperimenter uint16 = 0xffff
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
	BadRequestBadMultipart
	BadRequestBadExperimenter
	BadRequestBadExpType
	BadRequestEPerm
	BadRequestBadLen
	BadRequestBufferEmpty
	BadRequestBufferUnknown
	BadRequestBadTableID
	BadRequestIsSlave
	BadRequestBadPort
	BadRequestBadPacket
	BadRequestMultipartBufferOverflow
)

// Bad action codes.
const (
	BadActionBadType uint16 = iota
	BadActionBadLen
	BadActionBadExperimenter
	BadActionBadExpType
	BadActionBadOutPort
	BadActionBadArgument
	BadActionEPerm
	BadActionTooMany
	BadActionBadQueue
	BadActionBadOutGroup
	BadActionMatchInconsistent
	BadActionUnsupportedOrder
	BadActionBadTag
	BadActionBadSetType
	BadActionBadSetLen
	BadActionBadSetArgument
)

// Bad instruction codes.
const (
	BadInstructionUnknownInst uint16 = iota
	BadInstructionUnsupInst
	BadInstructionBadTableID
	BadInstructionUnsupMetadata
	BadInstructionUnsupMetadataMask
	BadInstructionBadExperimenter
	BadInstructionBadExpType
	BadInstructionBadLen
	BadInstructionEPerm
)

// Bad match codes.
const (
	BadMatchBadType uint16 = iota
	BadMatchBadLen
	BadMatchBadTag
	BadMatchBadDlAddrMask
	BadMatchBadNwAddrMask
	BadMatchBadWildcards
	BadMatchBadField
	BadMatchBadValue
	BadMatchBadMask
	BadMatchBadPrereq
	BadMatchDupField
	BadMatchEPerm
)

// Meter mod failed codes.
const (
	MeterModFailedUnknown uint16 = iota
	MeterModFailedMeterExists
	MeterModFailedInvalidMeter
	MeterModFailedUnknownMeter
	MeterModFailedBadCommand
	MeterModFailedBadFlags
	MeterModFailedBadRate
	MeterModFailedBadBurst
	MeterModFailedBadBand
	MeterModFailedBadBandValue
	MeterModFailedOutOfMeters
	MeterModFailedOutOfBands
)

var (
	badRequestBadLen = wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadLen}

	messageFamily = wire.Family{
		Kind:       "message",
		BadType:    wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:     badRequestBadLen,
		BadVersion: wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadVersion},
	}

	multipartFamily = wire.Family{
		Kind:    "multipart",
		BadType: wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadMultipart},
		BadLen:  badRequestBadLen,
	}

	actionFamily = wire.Family{
		Kind:    "action",
		BadType: wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadType},
		BadLen:  wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadLen},
	}

	setFieldFamily = wire.Family{
		Kind:    "set_field",
		BadType: wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadSetType},
		BadLen:  wire.Code{Type: ErrorTypeBadAction, Code: BadActionBadSetLen},
	}

	instructionFamily = wire.Family{
		Kind:    "instruction",
		BadType: wire.Code{Type: ErrorTypeBadInstruction, Code: BadInstructionUnknownInst},
		BadLen:  wire.Code{Type: ErrorTypeBadInstruction, Code: BadInstructionBadLen},
	}

	oxmFamily = wire.Family{
		Kind:    "oxm",
		BadType: wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadField},
		BadLen:  wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadLen},
	}

	matchFamily = wire.Family{
		Kind:    "match",
		BadType: wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadType},
		BadLen:  wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchBadLen},
	}

	meterBandFamily = wire.Family{
		Kind:    "meter band",
		BadType: wire.Code{Type: ErrorTypeMeterModFailed, Code: MeterModFailedUnknownMeter},
		BadLen:  badRequestBadLen,
	}

	queuePropertyFamily = wire.Family{
		Kind:        "queue property",
		BadType:     wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:      badRequestBadLen,
		SkipUnknown: true,
	}

	tableFeaturePropertyFamily = wire.Family{
		Kind:        "table_feature_property",
		BadType:     wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:      badRequestBadLen,
		SkipUnknown: true,
	}

	helloElementFamily = wire.Family{
		Kind:        "hello element",
		BadType:     wire.Code{Type: ErrorTypeHelloFailed, Code: HelloFailedIncompatible},
		BadLen:      badRequestBadLen,
		SkipUnknown: true,
	}

	// structFamily covers the fixed structures that carry no discriminant of
	// their own: ports, stats entries, buckets, queues.
	structFamily = wire.Family{
		Kind:    "struct",
		BadType: wire.Code{Type: ErrorTypeBadRequest, Code: BadRequestBadType},
		BadLen:  badRequestBadLen,
	}
)

// Protocol error pairs callers commonly test for.
var (
	CodeBadActionType      = actionFamily.BadType
	CodeBadActionLen       = actionFamily.BadLen
	CodeUnknownInstruction = instructionFamily.BadType
	CodeBadMatchField      = oxmFamily.BadType
	CodeDuplicateField     = wire.Code{Type: ErrorTypeBadMatch, Code: BadMatchDupField}
	CodeUnknownMeterBand   = meterBandFamily.BadType
	CodeBadMessageType     = messageFamily.BadType
	CodeBadMultipartType   = multipartFamily.BadType
	CodeBadVersion         = messageFamily.BadVersion
	CodeBadLen             = badRequestBadLen
)
