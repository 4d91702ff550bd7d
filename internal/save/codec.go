package save

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/mesh-intelligence/gemini/internal/game"
)

// Save files use CBOR: binary, self-describing, keyed by field name. Decoding
// ignores fields it does not know, so older builds read newer saves.
var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// Marshal encodes v in the save file format.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes save file data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// encodeGuarded encodes the value behind g while holding its guard. Only the
// in-memory encoding happens under the guard; callers write the bytes after
// it is released.
func encodeGuarded[V any](g game.Guarded[V]) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	g.With(func(v *V) {
		data, err = Marshal(v)
	})
	return data, err
}
