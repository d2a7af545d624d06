package pumpfun

import (
	"github.com/code-payments/ixkit/pkg/solana/binary"
)

var (
	CreateInstructionDiscriminator = binary.AnchorDiscriminator("create")
	BuyInstructionDiscriminator    = binary.AnchorDiscriminator("buy")
	SellInstructionDiscriminator   = binary.AnchorDiscriminator("sell")
)
