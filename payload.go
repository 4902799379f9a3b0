package iotago

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// PayloadType denotes the type of a Payload.
type PayloadType byte

const (
	// PayloadTaggedData denotes a TaggedData payload.
	PayloadTaggedData PayloadType = iota
	// PayloadTransaction denotes a Transaction payload.
	PayloadTransaction
)

func (t PayloadType) String() string {
	if int(t) >= len(payloadNames) {
		return "unknown payload type"
	}

	return payloadNames[t]
}

var payloadNames = [PayloadTransaction + 1]string{
	"TaggedData", "Transaction",
}

// Payload is an optional, serializable object carried by a TransactionEssence.
type Payload interface {
	Sizer
	NonEphemeralObject
	ProcessableObject
	constraints.Cloneable[Payload]

	// PayloadType returns the type of the Payload.
	PayloadType() PayloadType
}

func registerPayloads(api *serix.API) {
	mustRegisterInterfaceObjects(api, (*Payload)(nil),
		(*TaggedData)(nil),
		(*Transaction)(nil),
	)
}

const (
	// MaxTaggedDataTagLength is the maximum length of a TaggedData tag.
	MaxTaggedDataTagLength = 64
	// MaxTaggedDataDataLength is the maximum length of a TaggedData data field.
	MaxTaggedDataDataLength = 8192
)

// TaggedData is a payload that holds a tag and an arbitrary data field, used to embed application data in a block
// or, tucked inside a TransactionEssence, alongside a value transfer.
type TaggedData struct {
	// Tag is an arbitrary, application specific indexation tag.
	Tag []byte `serix:"0,lengthPrefixType=uint8,mapKey=tag,minLen=0,maxLen=64"`
	// Data is arbitrary, application specific data.
	Data []byte `serix:"1,lengthPrefixType=uint32,mapKey=data,minLen=0,maxLen=8192,omitempty"`
}

func (t *TaggedData) Clone() Payload {
	return &TaggedData{
		Tag:  append([]byte(nil), t.Tag...),
		Data: append([]byte(nil), t.Data...),
	}
}

func (t *TaggedData) StorageScore(storageScoreParams *StorageScoreParameters, f StorageScoreFunc) StorageScore {
	if f != nil {
		return f(storageScoreParams)
	}

	return storageScoreParams.FactorData.Multiply(StorageScore(t.Size()))
}

func (t *TaggedData) WorkScore(workScoreParams *WorkScoreParameters) (WorkScore, error) {
	return workScoreParams.DataKibibyte.Multiply((t.Size() + 1023) / 1024)
}

func (t *TaggedData) PayloadType() PayloadType {
	return PayloadTaggedData
}

func (t *TaggedData) Size() int {
	return serializer.SmallTypeDenotationByteSize +
		serializer.OneByte + len(t.Tag) +
		serializer.UInt32ByteSize + len(t.Data)
}
