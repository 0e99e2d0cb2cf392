package based

// Convenience combinators pairing the opaque stages with encoding in a
// single call, using random algorithm/dictionary selection for varied
// output.

// HashEncodeResult names what HashEncode produced and how.
type HashEncodeResult struct {
	Encoded    string
	Algorithm  HashAlgorithm
	Dictionary string
}

// HashEncode digests data with a random algorithm and encodes the digest
// with a random dictionary from the registry.
func HashEncode(data []byte, reg *Registry) (*HashEncodeResult, error) {
	return HashEncodeWith(data, RandomHash(), reg)
}

// HashEncodeWith digests data with a specific algorithm and encodes the
// digest with a random dictionary from the registry.
func HashEncodeWith(data []byte, algo HashAlgorithm, reg *Registry) (*HashEncodeResult, error) {
	digest, err := HashBytes(data, algo)
	if err != nil {
		return nil, err
	}
	name, dict, err := reg.Random()
	if err != nil {
		return nil, err
	}
	return &HashEncodeResult{
		Encoded:    Encode(digest, dict),
		Algorithm:  algo,
		Dictionary: name,
	}, nil
}

// CompressEncodeResult names what CompressEncode produced and how.
type CompressEncodeResult struct {
	Encoded    string
	Algorithm  CompressionAlgorithm
	Dictionary string
}

// CompressEncode compresses data with a random algorithm and encodes the
// result with a random dictionary from the registry.
func CompressEncode(data []byte, reg *Registry) (*CompressEncodeResult, error) {
	return CompressEncodeWith(data, RandomCompression(), reg)
}

// CompressEncodeWith compresses data with a specific algorithm at its
// default level and encodes the result with a random dictionary.
func CompressEncodeWith(data []byte, algo CompressionAlgorithm, reg *Registry) (*CompressEncodeResult, error) {
	compressed, err := Compress(data, algo, algo.DefaultLevel())
	if err != nil {
		return nil, err
	}
	name, dict, err := reg.Random()
	if err != nil {
		return nil, err
	}
	return &CompressEncodeResult{
		Encoded:    Encode(compressed, dict),
		Algorithm:  algo,
		Dictionary: name,
	}, nil
}
