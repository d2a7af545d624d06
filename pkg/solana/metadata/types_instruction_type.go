package metadata

type InstructionType uint8

// Only the instructions composed here are listed. Each is followed by a
// variant byte, which is always V1.
const (
	InstructionTypeCreate   InstructionType = 42
	InstructionTypeMint     InstructionType = 43
	InstructionTypeTransfer InstructionType = 49
)

const instructionVariantV1 uint8 = 0

func (t InstructionType) v1() []byte {
	return []byte{uint8(t), instructionVariantV1}
}
