package buffer

import "github.com/pion/vidcbuf/pkg/session"

type dispatchKey struct {
	dir session.Direction
	typ Type
}

type sizeEntry struct {
	needs requirement
	size  func(c *Calculator, in inputs) uint32
}

// sizeTable is the direction by type matrix of buffer formulas. A missing key
// means the buffer does not exist for that direction.
var sizeTable = map[dispatchKey]sizeEntry{
	{session.Decode, Input}:      {needLimits, (*Calculator).inputSize},
	{session.Decode, Output}:     {needLimits, (*Calculator).outputSize},
	{session.Decode, InputMeta}:  {0, (*Calculator).inputMetaSize},
	{session.Decode, OutputMeta}: {0, (*Calculator).outputMetaSize},
	{session.Decode, Bin}:        {needCore | needPipes | needLimits, (*Calculator).decoderBinSize},
	{session.Decode, Comv}:       {needCore | needLimits, (*Calculator).decoderComvSize},
	{session.Decode, NonComv}:    {needCore | needPipes | needLimits, (*Calculator).decoderNonComvSize},
	{session.Decode, Line}:       {needCore | needPipes | needLimits, (*Calculator).decoderLineSize},
	{session.Decode, Persist}:    {0, (*Calculator).decoderPersistSize},

	{session.Encode, Input}:      {needLimits, (*Calculator).inputSize},
	{session.Encode, Output}:     {needLimits, (*Calculator).outputSize},
	{session.Encode, InputMeta}:  {0, (*Calculator).inputMetaSize},
	{session.Encode, OutputMeta}: {0, (*Calculator).outputMetaSize},
	{session.Encode, Bin}:        {needCore | needPipes | needStage | needLimits, (*Calculator).encoderBinSize},
	{session.Encode, Comv}:       {needCore | needLimits, (*Calculator).encoderComvSize},
	{session.Encode, NonComv}:    {needCore | needPipes | needLimits, (*Calculator).encoderNonComvSize},
	{session.Encode, Line}:       {needCore | needPipes | needLimits, (*Calculator).encoderLineSize},
	{session.Encode, DPB}:        {needCore | needLimits, (*Calculator).encoderDPBSize},
	{session.Encode, ARP}:        {needCore, (*Calculator).encoderARPSize},
	{session.Encode, VPSS}:       {needCore | needLimits, (*Calculator).encoderVPSSSize},
}

// Supported reports whether buffer type t exists for direction d.
func Supported(d session.Direction, t Type) bool {
	_, ok := sizeTable[dispatchKey{d, t}]
	return ok
}

// Size returns the size in bytes of a buffer of type t for s. It returns 0
// when the buffer does not exist for the session direction, when the codec
// has no such buffer, or when the session lacks what the formula reads.
func (c *Calculator) Size(s *session.Session, t Type) uint32 {
	if s == nil {
		c.log.Errorf("size of %s: %v", t, ErrNilSession)
		return 0
	}
	e, ok := sizeTable[dispatchKey{s.Direction, t}]
	if !ok {
		return 0
	}
	in, err := check(s, e.needs)
	if err != nil {
		c.log.Errorf("%s: size of %s: %v", s, t, err)
		return 0
	}
	size := e.size(c, in)
	c.log.Tracef("%s: %s size %d", s, t, size)
	return size
}

func (c *Calculator) inputMetaSize(in inputs) uint32 {
	return c.ports.InputMetaSize(in.s)
}

func (c *Calculator) outputMetaSize(in inputs) uint32 {
	return c.ports.OutputMetaSize(in.s)
}

func (c *Calculator) inputSize(in inputs) uint32 {
	return c.ports.InputSize(in.s)
}

func (c *Calculator) outputSize(in inputs) uint32 {
	return c.ports.OutputSize(in.s)
}
