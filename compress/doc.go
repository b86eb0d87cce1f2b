// Package compress provides general-purpose compression codecs for an
// already-encoded HeadPack message.
//
// HeadPack's own encoding removes structural redundancy (tag bytes, length
// prefixes) but does nothing about redundancy within string and bytes
// payloads themselves, map keys included: every key is written in full. Running a general-purpose
// compressor over the encoded message recovers that second layer of
// savings, the same two-stage strategy used elsewhere in this codebase's
// lineage: encode first to exploit known structure, compress second to
// exploit whatever's left.
//
// Three algorithms are available, each a different point on the
// ratio/speed tradeoff: Zstd (best ratio), S2 (balanced), LZ4 (fastest
// decompression). NoOp is provided as a zero-overhead baseline for
// comparison.
package compress
