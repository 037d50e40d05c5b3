package datasets

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ConfigGen holds one generator and encodes it as a single-key object
// naming its kind, e.g. {"reverse": {"num": 10}}.
type ConfigGen struct {
	Gen Gen
}

const (
	genSorted  = "sorted"
	genReverse = "reverse"
	genRandom  = "random"
)

func genKinds() string { return strings.Join([]string{genSorted, genReverse, genRandom}, " ") }

func (g *ConfigGen) MarshalJSON() ([]byte, error) {
	var kind string
	switch g.Gen.(type) {
	case SortedGen:
		kind = genSorted
	case ReverseGen:
		kind = genReverse
	case RandomGen:
		kind = genRandom
	case nil:
		return []byte("{}"), nil
	default:
		return nil, fmt.Errorf("unknown generator type %T", g.Gen)
	}
	return json.Marshal(map[string]Gen{kind: g.Gen})
}

func (g *ConfigGen) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("bad generator: %w", err)
	}
	switch len(raw) {
	case 0:
		return fmt.Errorf("expected exactly one generator of [%s], found none", genKinds())
	case 1:
	default:
		found := make([]string, 0, len(raw))
		for k := range raw {
			found = append(found, k)
		}
		sort.Strings(found)
		return fmt.Errorf("expected exactly one generator, found multiple [%s]", strings.Join(found, " "))
	}

	for kind, body := range raw {
		var (
			gen Gen
			err error
		)
		switch kind {
		case genSorted:
			var sg SortedGen
			err = json.Unmarshal(body, &sg)
			gen = sg
		case genReverse:
			var rg ReverseGen
			err = json.Unmarshal(body, &rg)
			gen = rg
		case genRandom:
			var rg RandomGen
			err = json.Unmarshal(body, &rg)
			gen = rg
		default:
			return fmt.Errorf("unknown generator %q, must be one of [%s]", kind, genKinds())
		}
		if err != nil {
			return fmt.Errorf("bad %s generator: %w", kind, err)
		}
		if gen.Len() < 0 {
			return fmt.Errorf("%s generator: num must be non-negative (found %d)", kind, gen.Len())
		}
		g.Gen = gen
	}
	return nil
}

var _ json.Marshaler = new(ConfigGen)
var _ json.Unmarshaler = new(ConfigGen)
