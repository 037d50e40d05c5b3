package flagtypes

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type StringList struct {
	Sep  string
	Vals []string
}

func (f *StringList) String() string { return strings.Join(f.Vals, f.Sep) }
func (f *StringList) Set(s string) error {
	f.Vals = nil
	for _, v := range strings.Split(s, f.Sep) {
		if v = strings.TrimSpace(v); v != "" {
			f.Vals = append(f.Vals, v)
		}
	}
	return nil
}

var _ flag.Value = new(StringList)

type IntList struct {
	Sep  string
	Vals []int
}

func (f *IntList) String() string {
	strs := make([]string, len(f.Vals))
	for i, v := range f.Vals {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, f.Sep)
}

func (f *IntList) Set(s string) error {
	var vals []int
	for _, v := range strings.Split(s, f.Sep) {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("bad list element %q: %w", v, err)
		}
		vals = append(vals, n)
	}
	f.Vals = vals
	return nil
}

var _ flag.Value = new(IntList)
