// Command headpack-bench encodes a JSON fixture through HeadPack and
// reports the encoded size against the original JSON, then compresses the
// encoded message with each available algorithm for comparison.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xcodian/headpack/codec"
	"github.com/xcodian/headpack/compress"
	"github.com/xcodian/headpack/jsonbridge"
	"github.com/xcodian/headpack/value"
)

func main() {
	inputPath := flag.String("input", "", "path to a JSON file to benchmark (defaults to the built-in fixture)")
	flag.Parse()

	raw := []byte(twitterUserFixture)
	if *inputPath != "" {
		data, err := os.ReadFile(*inputPath)
		if err != nil {
			log.Fatalf("headpack-bench: reading %s: %v", *inputPath, err)
		}
		raw = data
	}

	if err := run(raw); err != nil {
		log.Fatalf("headpack-bench: %v", err)
	}
}

func run(raw []byte) error {
	v, err := jsonbridge.ToValue(raw)
	if err != nil {
		return fmt.Errorf("decode JSON fixture: %w", err)
	}

	encoded, err := codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	decoded, err := codec.Decode(encoded)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	roundTripped, err := jsonbridge.FromValue(decoded)
	if err != nil {
		return fmt.Errorf("re-encode JSON: %w", err)
	}

	reDecoded, err := jsonbridge.ToValue(roundTripped)
	if err != nil {
		return fmt.Errorf("re-decode round-tripped JSON: %w", err)
	}

	if !value.Equal(v, reDecoded) {
		return fmt.Errorf("round trip changed value tree")
	}

	fmt.Println("HeadPack encoding benchmark")
	fmt.Println("===========================")
	fmt.Printf("JSON input size:     %d bytes\n", len(raw))
	fmt.Printf("HeadPack size:       %d bytes (%.1f%% of JSON)\n", len(encoded), ratio(len(encoded), len(raw)))
	fmt.Println()
	fmt.Println("Compressing the HeadPack-encoded message:")

	for _, alg := range compress.All() {
		if err := reportCompression(alg, encoded); err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
	}

	return nil
}

func reportCompression(alg compress.Algorithm, data []byte) error {
	c, err := compress.New(alg)
	if err != nil {
		return err
	}

	compressed, err := c.Compress(data)
	if err != nil {
		return err
	}

	decompressed, err := c.Decompress(compressed)
	if err != nil {
		return err
	}

	if len(decompressed) != len(data) {
		return fmt.Errorf("round trip size mismatch: got %d bytes, want %d", len(decompressed), len(data))
	}

	fmt.Printf("  %-5s %6d bytes (%.1f%% of encoded)\n", alg, len(compressed), ratio(len(compressed), len(data)))
	return nil
}

func ratio(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(n) / float64(total) * 100
}
