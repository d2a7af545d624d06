package metadata

import (
	"crypto/ed25519"
	"fmt"

	"github.com/code-payments/ixkit/pkg/solana/binary"
)

const (
	MaxNameLength           = 32
	MaxSymbolLength         = 10
	MaxUriLength            = 200
	MaxCreatorLimit         = 5
	MaxSellerFeeBasisPoints = 10000
)

type TokenStandard uint8

const (
	TokenStandardNonFungible TokenStandard = iota
	TokenStandardFungibleAsset
	TokenStandardFungible
	TokenStandardNonFungibleEdition
	TokenStandardProgrammableNonFungible
	TokenStandardProgrammableNonFungibleEdition

	tokenStandardCount
)

type UseMethod uint8

const (
	UseMethodBurn UseMethod = iota
	UseMethodMultiple
	UseMethodSingle

	useMethodCount
)

type PrintSupplyKind uint8

const (
	PrintSupplyZero PrintSupplyKind = iota
	PrintSupplyLimited
	PrintSupplyUnlimited

	printSupplyKindCount
)

type Creator struct {
	Address  ed25519.PublicKey
	Verified bool
	Share    uint8
}

type Collection struct {
	Verified bool
	Key      ed25519.PublicKey
}

type Uses struct {
	UseMethod UseMethod
	Remaining uint64
	Total     uint64
}

// PrintSupply bounds the number of editions that can be printed from a master
// edition. Limit is only encoded for PrintSupplyLimited.
type PrintSupply struct {
	Kind  PrintSupplyKind
	Limit uint64
}

// AssetData is the on-chain description of an asset. A nil Creators, Collection,
// Uses or RuleSet is encoded as None.
type AssetData struct {
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             []Creator
	PrimarySaleHappened  bool
	IsMutable            bool
	TokenStandard        TokenStandard
	Collection           *Collection
	Uses                 *Uses
	RuleSet              ed25519.PublicKey
}

func (d *AssetData) encode(e *binary.Encoder) *binary.Encoder {
	e.String("name", d.Name, MaxNameLength).
		String("symbol", d.Symbol, MaxSymbolLength).
		String("uri", d.Uri, MaxUriLength).
		Check(
			"seller_fee_basis_points",
			d.SellerFeeBasisPoints <= MaxSellerFeeBasisPoints,
			fmt.Sprintf("%d exceeds %d", d.SellerFeeBasisPoints, MaxSellerFeeBasisPoints),
		).
		U16("seller_fee_basis_points", d.SellerFeeBasisPoints)

	e.Option("creators", d.Creators != nil)
	if d.Creators != nil {
		var shares int
		for _, c := range d.Creators {
			shares += int(c.Share)
		}
		e.Check("creators", len(d.Creators) <= MaxCreatorLimit, fmt.Sprintf("%d creators (max %d)", len(d.Creators), MaxCreatorLimit)).
			Check("creators", len(d.Creators) == 0 || shares == 100, fmt.Sprintf("creator shares add up to %d, not 100", shares)).
			U32("creators", uint32(len(d.Creators)))
		for _, c := range d.Creators {
			e.Key("creator.address", c.Address).
				Bool("creator.verified", c.Verified).
				U8("creator.share", c.Share)
		}
	}

	e.Bool("primary_sale_happened", d.PrimarySaleHappened).
		Bool("is_mutable", d.IsMutable).
		Enum("token_standard", uint8(d.TokenStandard), uint8(tokenStandardCount))

	e.Option("collection", d.Collection != nil)
	if d.Collection != nil {
		e.Bool("collection.verified", d.Collection.Verified).
			Key("collection.key", d.Collection.Key)
	}

	e.Option("uses", d.Uses != nil)
	if d.Uses != nil {
		e.Enum("uses.use_method", uint8(d.Uses.UseMethod), uint8(useMethodCount)).
			U64("uses.remaining", d.Uses.Remaining).
			U64("uses.total", d.Uses.Total)
	}

	// Collection details are only set for sized collection parents.
	e.Option("collection_details", false)

	return e.OptionalKey("rule_set", d.RuleSet)
}

func (p *PrintSupply) encode(e *binary.Encoder) *binary.Encoder {
	e.Option("print_supply", p != nil)
	if p == nil {
		return e
	}

	e.Enum("print_supply", uint8(p.Kind), uint8(printSupplyKindCount))
	if p.Kind == PrintSupplyLimited {
		e.U64("print_supply.limit", p.Limit)
	}
	return e
}
