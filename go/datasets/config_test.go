package datasets

import (
	"strings"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/google/go-cmp/cmp"
)

const testConfigYAML = `
seed: 7
datasets:
- name: sorted_data
  gen:
    sorted: {start: 1, step: 1}
  sizes: [10, 20]
- name: random_small
  gen:
    random: {num: 5, low: -3, high: 3}
`

func TestConfigFromYAML(t *testing.T) {
	var c Config
	if err := yaml.Unmarshal([]byte(testConfigYAML), &c); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("invalid config: %v", err)
	}

	var names []string
	var lens []int
	for _, inst := range c.Enumerate() {
		names = append(names, inst.Name)
		lens = append(lens, len(inst.Generate()))
	}
	if diff := cmp.Diff([]string{"sorted_data_10", "sorted_data_20", "random_small"}, names); diff != "" {
		t.Errorf("names, want - got:\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 20, 5}, lens); diff != "" {
		t.Errorf("lengths, want - got:\n%s", diff)
	}
}

func TestConfigGenRoundTrip(t *testing.T) {
	c := DefaultConfig()
	b, err := yaml.Marshal(&c)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	var got Config
	if err := yaml.Unmarshal(b, &got); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	want, have := c.Enumerate(), got.Enumerate()
	if len(want) != len(have) {
		t.Fatalf("got %d instances, want %d", len(have), len(want))
	}
	for i := range want {
		if want[i].Name != have[i].Name || want[i].Gen.Category() != have[i].Gen.Category() {
			t.Errorf("instance %d: got %s (%s), want %s (%s)", i,
				have[i].Name, have[i].Gen.Category(), want[i].Name, want[i].Gen.Category())
		}
		if diff := cmp.Diff(want[i].Generate(), have[i].Generate()); diff != "" {
			t.Errorf("%s: generated data differs", want[i].Name)
		}
	}
}

func TestConfigGenRejectsMultiple(t *testing.T) {
	var g ConfigGen
	err := g.UnmarshalJSON([]byte(`{"sorted": {"num": 1}, "random": {"num": 1}}`))
	if err == nil || !strings.Contains(err.Error(), "multiple") {
		t.Errorf("got err %v, want multiple-generator error", err)
	}
}

func TestConfigGenUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Gen
		wantErr string
	}{
		{"Sorted", `{"sorted": {"num": 3, "start": 2}}`, SortedGen{Num: 3, Start: 2}, ""},
		{"Reverse", `{"reverse": {"num": 4}}`, ReverseGen{Num: 4}, ""},
		{"Random", `{"random": {"num": 5, "low": -1, "high": 1}}`, RandomGen{Num: 5, Low: -1, High: 1}, ""},
		{"Empty", `{}`, nil, "found none"},
		{"Null", `null`, nil, "found none"},
		{"Unknown", `{"shuffled": {"num": 3}}`, nil, `unknown generator "shuffled"`},
		{"BadBody", `{"sorted": {"num": "x"}}`, nil, "bad sorted generator"},
		{"NegativeNum", `{"random": {"num": -2}}`, nil, "num must be non-negative"},
		{"NotObject", `[1, 2]`, nil, "bad generator"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			var g ConfigGen
			err := g.UnmarshalJSON([]byte(test.in))
			if test.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), test.wantErr) {
					t.Fatalf("got err %v, want one containing %q", err, test.wantErr)
				}
				if g.Gen != nil {
					t.Errorf("failed decode set generator %#v", g.Gen)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Gen.Category() != test.want.Category() || g.Gen.Len() != test.want.Len() {
				t.Errorf("got %#v, want %#v", g.Gen, test.want)
			}
			if test.want.Category() == CategoryRandom {
				return
			}
			if diff := cmp.Diff(test.want.Gen(nil), g.Gen.Gen(nil)); diff != "" {
				t.Errorf("generated data, want - got:\n%s", diff)
			}
		})
	}
}

func TestConfigGenEmptyInYAML(t *testing.T) {
	var c Config
	err := yaml.Unmarshal([]byte("datasets:\n- name: x\n  gen: {}\n"), &c)
	if err == nil || !strings.Contains(err.Error(), "found none") {
		t.Errorf("got err %v, want empty-generator error", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		want []string
	}{
		{"Empty", Config{}, []string{"no datasets"}},
		{
			"Bad",
			Config{Datasets: []Spec{
				{Name: "", Gen: ConfigGen{SortedGen{Num: 1}}},
				{Name: "a/b", Gen: ConfigGen{SortedGen{Num: 1}}},
				{Name: "nogen"},
				{Name: "r", Gen: ConfigGen{RandomGen{Num: 1, Low: 5, High: 1}}},
				{Name: "s", Gen: ConfigGen{SortedGen{}}, Sizes: []int{-1}},
			}},
			[]string{"has no name", "path separator", "has no generator", "low 5 > high 1", "Sizes[0]"},
		},
		{
			"Duplicate",
			Config{Datasets: []Spec{
				{Name: "x_10", Gen: ConfigGen{SortedGen{Num: 10}}},
				{Name: "x", Gen: ConfigGen{SortedGen{}}, Sizes: []int{10}},
			}},
			[]string{`duplicate dataset name "x_10"`},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			err := test.c.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			for _, w := range test.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c := DefaultConfig()
	a := c.Enumerate()
	b := c.Enumerate()
	for i := range a {
		if diff := cmp.Diff(a[i].Generate(), b[i].Generate()); diff != "" {
			t.Errorf("%s differs between runs", a[i].Name)
		}
	}
}
