package storage

import (
	"agentcrm/internal/storage/interfaces"
	"agentcrm/internal/structures"
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type ZstdCompression struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func (z *ZstdCompression) Compress(val []byte) ([]byte, error) {
	return z.encoder.EncodeAll(val, make([]byte, 0, len(val)/2)), nil
}

// Decompress passes plain (uncompressed) input through untouched so files
// written before compression was enabled remain readable.
func (z *ZstdCompression) Decompress(val []byte) ([]byte, error) {
	if !IsZstd(val) {
		return val, nil
	}
	return z.decoder.DecodeAll(val, nil)
}

func (z *ZstdCompression) Close() {
	_ = z.encoder.Close()
	z.decoder.Close()
}

func NewZstdCompressor() (interfaces.CompressorInterface, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &ZstdCompression{encoder: encoder, decoder: decoder}, nil
}

// PlainCodec stores snapshots as readable JSON. Zstd input is still
// decoded so a file stays readable after compression is switched off.
type PlainCodec struct {
	zstd interfaces.CompressorInterface
}

func (p *PlainCodec) Compress(val []byte) ([]byte, error) {
	return val, nil
}

func (p *PlainCodec) Decompress(val []byte) ([]byte, error) {
	return p.zstd.Decompress(val)
}

func (p *PlainCodec) Close() {
	p.zstd.Close()
}

func IsZstd(val []byte) bool {
	return bytes.HasPrefix(val, zstdMagic)
}

// NewCompressor picks the on-disk codec from persistence.compress.
func NewCompressor(conf *structures.Config) (interfaces.CompressorInterface, error) {
	z, err := NewZstdCompressor()
	if err != nil {
		return nil, err
	}
	if conf.Persistence.Compress {
		return z, nil
	}
	return &PlainCodec{zstd: z}, nil
}
