package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// SlotSource describes where an account slot gets its address from.
type SlotSource uint8

const (
	SourceConstant SlotSource = iota
	SourceInput
	SourceDerived
)

// SeedKind describes where a seed (or a derived slot's program id) gets its
// bytes from.
type SeedKind uint8

const (
	SeedLiteral SeedKind = iota
	SeedSlot
	SeedInput
	SeedKey
)

// SeedRef is one element of a derivation template.
type SeedRef struct {
	Kind  SeedKind
	Name  string
	Value []byte

	// IsAddress requires an input seed to be a 32 byte address.
	IsAddress bool
}

// Literal is a fixed seed, typically a tag like "metadata".
func Literal(v []byte) SeedRef {
	return SeedRef{Kind: SeedLiteral, Value: v}
}

// SlotRef uses the address bound to another slot of the same schema.
func SlotRef(name string) SeedRef {
	return SeedRef{Kind: SeedSlot, Name: name}
}

// InputRef uses the raw bytes of a caller input.
func InputRef(name string) SeedRef {
	return SeedRef{Kind: SeedInput, Name: name}
}

// InputKeyRef uses a caller input that must be an address.
func InputKeyRef(name string) SeedRef {
	return SeedRef{Kind: SeedInput, Name: name, IsAddress: true}
}

// KeyRef uses a protocol constant.
func KeyRef(key ed25519.PublicKey) SeedRef {
	return SeedRef{Kind: SeedKey, Value: key}
}

// SlotSpec is a single row of a schema table.
type SlotSpec struct {
	Name       string
	Source     SlotSource
	Key        ed25519.PublicKey
	Input      string
	Program    SeedRef
	Seeds      []SeedRef
	IsSigner   bool
	IsWritable bool
}

// Constant is a slot bound to a protocol-fixed address.
func Constant(name string, key ed25519.PublicKey) SlotSpec {
	return SlotSpec{Name: name, Source: SourceConstant, Key: key}
}

// Input is a slot bound to the caller input of the same name.
func Input(name string) SlotSpec {
	return InputFrom(name, name)
}

// InputFrom is a slot bound to a caller input with a different name, which
// lets several slots share one input.
func InputFrom(name, input string) SlotSpec {
	return SlotSpec{Name: name, Source: SourceInput, Input: input}
}

// Derived is a slot whose address is a program derived address.
func Derived(name string, program SeedRef, seeds ...SeedRef) SlotSpec {
	return SlotSpec{Name: name, Source: SourceDerived, Program: program, Seeds: seeds}
}

func (s SlotSpec) Writable() SlotSpec {
	s.IsWritable = true
	return s
}

func (s SlotSpec) Signer() SlotSpec {
	s.IsSigner = true
	return s
}

// Inputs are the caller supplied values, keyed by input name. Address inputs
// must be 32 bytes, seed inputs may be any length up to the seed limit.
type Inputs map[string][]byte

// SetKey stores an address input.
func (i Inputs) SetKey(name string, key ed25519.PublicKey) Inputs {
	i[name] = key
	return i
}

// Schema is the static account table of one instruction kind.
//
// Slot order is the account order the program expects. Program must be a
// constant or input slot.
type Schema struct {
	Name    string
	Program SlotSpec
	Slots   []SlotSpec
}

// DerivationRequest is a derived slot scheduled for evaluation.
type DerivationRequest struct {
	Slot    string
	Program SeedRef
	Seeds   []SeedRef
}

// Plan is a resolved schema: every constant and input slot is bound and
// derived slots are ordered so producers come before consumers. Building a
// plan does no hashing.
type Plan struct {
	schema   *Schema
	program  ed25519.PublicKey
	bound    map[string]ed25519.PublicKey
	inputs   Inputs
	Requests []DerivationRequest
}

// Resolve validates the inputs against the schema and produces a Plan.
func (s *Schema) Resolve(inputs Inputs) (*Plan, error) {
	index := make(map[string]int, len(s.Slots))
	for i, slot := range s.Slots {
		if slot.Name == "" {
			return nil, newSchemaError(s.Name, "", errors.Wrapf(ErrInvalidSchema, "slot %d has no name", i))
		}
		if _, ok := index[slot.Name]; ok {
			return nil, newSchemaError(s.Name, slot.Name, errors.Wrap(ErrInvalidSchema, "duplicate slot"))
		}
		index[slot.Name] = i
	}

	p := &Plan{
		schema: s,
		bound:  make(map[string]ed25519.PublicKey),
		inputs: make(Inputs),
	}

	switch s.Program.Source {
	case SourceConstant, SourceInput:
		program, err := s.bindAddress(s.Program, inputs)
		if err != nil {
			return nil, err
		}
		p.program = program
	default:
		return nil, newSchemaError(s.Name, s.Program.Name, errors.Wrap(ErrInvalidSchema, "program cannot be derived"))
	}

	// Validate everything up front so a bad input never costs a derivation.
	var derived []int
	for i, slot := range s.Slots {
		switch slot.Source {
		case SourceConstant, SourceInput:
			key, err := s.bindAddress(slot, inputs)
			if err != nil {
				return nil, err
			}
			p.bound[slot.Name] = key
		case SourceDerived:
			refs := append([]SeedRef{slot.Program}, slot.Seeds...)
			for j, ref := range refs {
				if err := s.checkRef(slot.Name, ref, j == 0, index, inputs, p.inputs); err != nil {
					return nil, err
				}
			}
			derived = append(derived, i)
		default:
			return nil, newSchemaError(s.Name, slot.Name, errors.Wrapf(ErrInvalidSchema, "unknown slot source %d", slot.Source))
		}
	}

	order, err := s.orderDerivations(derived, index)
	if err != nil {
		return nil, err
	}
	for _, i := range order {
		slot := s.Slots[i]
		p.Requests = append(p.Requests, DerivationRequest{
			Slot:    slot.Name,
			Program: slot.Program,
			Seeds:   slot.Seeds,
		})
	}

	return p, nil
}

func (s *Schema) bindAddress(slot SlotSpec, inputs Inputs) (ed25519.PublicKey, error) {
	switch slot.Source {
	case SourceConstant:
		if len(slot.Key) != ed25519.PublicKeySize {
			return nil, newSchemaError(s.Name, slot.Name, errors.Wrap(ErrInvalidSchema, "constant is not a 32 byte key"))
		}
		return slot.Key, nil
	default:
		v, ok := inputs[slot.Input]
		if !ok {
			return nil, newSchemaError(s.Name, slot.Name, errors.Wrapf(ErrMissingAccountInput, "input %q not provided", slot.Input))
		}
		if len(v) != ed25519.PublicKeySize {
			return nil, newSchemaError(s.Name, slot.Name, errors.Wrapf(ErrMissingAccountInput, "input %q is %d bytes, not an address", slot.Input, len(v)))
		}
		return copyKey(v), nil
	}
}

func (s *Schema) checkRef(slot string, ref SeedRef, isProgram bool, index map[string]int, inputs, captured Inputs) error {
	switch ref.Kind {
	case SeedLiteral:
		if isProgram {
			return newSchemaError(s.Name, slot, errors.Wrap(ErrInvalidSchema, "program id cannot be a literal"))
		}
	case SeedKey:
		if len(ref.Value) != ed25519.PublicKeySize {
			return newSchemaError(s.Name, slot, errors.Wrap(ErrInvalidSchema, "key reference is not a 32 byte key"))
		}
	case SeedSlot:
		if _, ok := index[ref.Name]; !ok {
			return newSchemaError(s.Name, slot, errors.Wrapf(ErrInvalidSchema, "unknown slot %q", ref.Name))
		}
	case SeedInput:
		v, ok := inputs[ref.Name]
		if !ok {
			return newSchemaError(s.Name, slot, errors.Wrapf(ErrMissingAccountInput, "input %q not provided", ref.Name))
		}
		if (isProgram || ref.IsAddress) && len(v) != ed25519.PublicKeySize {
			return newSchemaError(s.Name, slot, errors.Wrapf(ErrMissingAccountInput, "input %q is %d bytes, not an address", ref.Name, len(v)))
		}
		if len(v) > maxSeedLength {
			return newSchemaError(s.Name, slot, errors.Wrapf(ErrSeedTooLong, "input %q is %d bytes", ref.Name, len(v)))
		}
		captured[ref.Name] = append([]byte(nil), v...)
	default:
		return newSchemaError(s.Name, slot, errors.Wrapf(ErrInvalidSchema, "unknown seed kind %d", ref.Kind))
	}
	return nil
}

// orderDerivations is a depth first topological sort over the derived slots.
// Ties keep account list order, so the evaluation order is stable.
func (s *Schema) orderDerivations(derived []int, index map[string]int) ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[int]int, len(derived))
	order := make([]int, 0, len(derived))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return newSchemaError(s.Name, s.Slots[i].Name, errors.Wrap(ErrInvalidSchema, "derivation cycle"))
		}

		state[i] = visiting
		slot := s.Slots[i]
		for _, ref := range append([]SeedRef{slot.Program}, slot.Seeds...) {
			if ref.Kind != SeedSlot {
				continue
			}
			dep := index[ref.Name]
			if s.Slots[dep].Source != SourceDerived {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for _, i := range derived {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Program returns the resolved program id.
func (p *Plan) Program() ed25519.PublicKey {
	return p.program
}

// Fill runs the scheduled derivations and binds every slot.
func (p *Plan) Fill() (*FilledPlan, error) {
	addresses := make(map[string]ed25519.PublicKey, len(p.schema.Slots))
	for name, key := range p.bound {
		addresses[name] = key
	}
	bumps := make(map[string]uint8, len(p.Requests))

	for _, req := range p.Requests {
		program, err := p.seedBytes(req.Program, addresses)
		if err != nil {
			return nil, newSchemaError(p.schema.Name, req.Slot, err)
		}

		seeds := make([][]byte, len(req.Seeds))
		for i, ref := range req.Seeds {
			if seeds[i], err = p.seedBytes(ref, addresses); err != nil {
				return nil, newSchemaError(p.schema.Name, req.Slot, err)
			}
		}

		res, err := Derive(program, seeds...)
		if err != nil {
			return nil, newSchemaError(p.schema.Name, req.Slot, err)
		}

		addresses[req.Slot] = res.Address
		bumps[req.Slot] = res.Bump
	}

	filled := &FilledPlan{
		Instruction: p.schema.Name,
		Program:     p.program,
		Slots:       make([]FilledSlot, len(p.schema.Slots)),
		index:       make(map[string]int, len(p.schema.Slots)),
	}
	for i, slot := range p.schema.Slots {
		bump, derived := bumps[slot.Name]
		filled.Slots[i] = FilledSlot{
			Name:       slot.Name,
			Address:    addresses[slot.Name],
			Bump:       bump,
			Derived:    derived,
			IsSigner:   slot.IsSigner,
			IsWritable: slot.IsWritable,
		}
		filled.index[slot.Name] = i
	}

	return filled, nil
}

func (p *Plan) seedBytes(ref SeedRef, addresses map[string]ed25519.PublicKey) ([]byte, error) {
	switch ref.Kind {
	case SeedLiteral, SeedKey:
		return ref.Value, nil
	case SeedInput:
		return p.inputs[ref.Name], nil
	case SeedSlot:
		key, ok := addresses[ref.Name]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSchema, "slot %q used before it was bound", ref.Name)
		}
		return key, nil
	default:
		return nil, errors.Wrapf(ErrInvalidSchema, "unknown seed kind %d", ref.Kind)
	}
}

// FilledSlot is an account slot with a concrete address.
type FilledSlot struct {
	Name       string
	Address    ed25519.PublicKey
	Bump       uint8
	Derived    bool
	IsSigner   bool
	IsWritable bool
}

// FilledPlan is a schema with every slot bound, ready for assembly.
type FilledPlan struct {
	Instruction string
	Program     ed25519.PublicKey
	Slots       []FilledSlot

	index map[string]int
}

// Address returns a copy of the address bound to the named slot, or nil.
func (p *FilledPlan) Address(name string) ed25519.PublicKey {
	i, ok := p.index[name]
	if !ok || p.Slots[i].Address == nil {
		return nil
	}
	return copyKey(p.Slots[i].Address)
}

// Bump returns the bump of a derived slot. The second return value is false
// for unknown or non-derived slots.
func (p *FilledPlan) Bump(name string) (uint8, bool) {
	i, ok := p.index[name]
	if !ok || !p.Slots[i].Derived {
		return 0, false
	}
	return p.Slots[i].Bump, true
}

// AccountMetas returns the slots as account metas, in schema order.
func (p *FilledPlan) AccountMetas() []AccountMeta {
	metas := make([]AccountMeta, len(p.Slots))
	for i, slot := range p.Slots {
		metas[i] = AccountMeta{
			PublicKey:  slot.Address,
			IsSigner:   slot.IsSigner,
			IsWritable: slot.IsWritable,
		}
	}
	return metas
}

// Assemble packages the filled plan and an encoded payload into an instruction.
func (p *FilledPlan) Assemble(data []byte) (Instruction, error) {
	ix, err := Assemble(p.Program, p.Slots, data)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) && schemaErr.Instruction == "" {
			schemaErr.Instruction = p.Instruction
		}
		return Instruction{}, err
	}
	return ix, nil
}

// String renders the bound addresses, mostly for logging.
func (p *FilledPlan) String() string {
	out := p.Instruction + "{"
	for i, slot := range p.Slots {
		if i > 0 {
			out += " "
		}
		out += slot.Name + "=" + base58.Encode(slot.Address)
	}
	return out + "}"
}

// ArgsEncoder is implemented by every instruction args type.
type ArgsEncoder interface {
	Encode() ([]byte, error)
}

// Compose runs the full pipeline for one instruction: resolve, fill, encode
// and assemble. The filled plan is returned so callers can reuse derived
// addresses.
func (s *Schema) Compose(inputs Inputs, args ArgsEncoder) (Instruction, *FilledPlan, error) {
	plan, err := s.Resolve(inputs)
	if err != nil {
		return Instruction{}, nil, err
	}

	filled, err := plan.Fill()
	if err != nil {
		return Instruction{}, nil, err
	}

	var data []byte
	if args != nil {
		if data, err = args.Encode(); err != nil {
			return Instruction{}, nil, err
		}
	}

	ix, err := filled.Assemble(data)
	if err != nil {
		return Instruction{}, nil, err
	}
	return ix, filled, nil
}

func copyKey(k []byte) ed25519.PublicKey {
	out := make(ed25519.PublicKey, len(k))
	copy(out, k)
	return out
}
