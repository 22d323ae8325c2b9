package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Estimate is the approximate footprint of one serialized tier. The
// numbers come from deliberately rough heuristics and serve relative
// comparison between tiers only, never as ground truth.
type Estimate struct {
	Tier            string `json:"tier" yaml:"tier"`
	EstimatedSize   int    `json:"estimated_size" yaml:"estimated_size"`
	Chars           int    `json:"chars" yaml:"chars"`
	Words           int    `json:"words" yaml:"words"`
	CompressedBytes int    `json:"compressed_bytes" yaml:"compressed_bytes"`
}

// divisor is the characters-per-token constant of a tier's serialized
// form. Denser tiers pack more meaning per character.
func divisor(t Tier) float64 {
	switch t {
	case TierEnhanced:
		return 3.5
	case TierUltra:
		return 3
	}
	return 4
}

// TokenEstimate approximates the token footprint of a serialized tier as
// its character count over the tier constant. Results of different tiers
// use different constants and must not be conflated.
func TokenEstimate(serialized []byte, t Tier) int {
	return int(float64(len(serialized)) / divisor(t))
}

// WordCount approximates the token footprint of a tree as its recursive
// whitespace-word count, one extra word per mapping key. It may disagree
// with TokenEstimate; callers pick one heuristic explicitly.
func WordCount(v any) int {
	return wordCount(reflect.ValueOf(v))
}

func wordCount(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return wordCount(v.Elem())
	case reflect.Map:
		n := 0
		for _, k := range v.MapKeys() {
			n += len(strings.Fields(fmt.Sprint(k.Interface()))) + 1
			n += wordCount(v.MapIndex(k))
		}
		return n
	case reflect.Slice, reflect.Array:
		n := 0
		for i := 0; i < v.Len(); i++ {
			n += wordCount(v.Index(i))
		}
		return n
	case reflect.Struct:
		n := 0
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			n += 2
			n += wordCount(v.Field(i))
		}
		return n
	case reflect.String:
		return len(strings.Fields(v.String()))
	default:
		return len(strings.Fields(fmt.Sprint(v.Interface())))
	}
}

// CompressedFootprint reports the zstd-compressed byte size of a
// serialized tier, another relative-comparison signal.
func CompressedFootprint(serialized []byte) (int, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(serialized, nil)), nil
}

// EstimateSchema serializes a tier tree and fills in every heuristic.
func EstimateSchema(s Schema) (*Estimate, error) {
	b, err := Marshal(s)
	if err != nil {
		return nil, err
	}
	compressed, err := CompressedFootprint(b)
	if err != nil {
		return nil, err
	}
	return &Estimate{
		Tier:            s.Tier().String(),
		EstimatedSize:   TokenEstimate(b, s.Tier()),
		Chars:           len(b),
		Words:           WordCount(s),
		CompressedBytes: compressed,
	}, nil
}
