package cpswap

import (
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

var (
	InitializeInstructionDiscriminator    = binary.AnchorDiscriminator("initialize")
	SwapBaseInputInstructionDiscriminator = binary.AnchorDiscriminator("swap_base_input")
)
