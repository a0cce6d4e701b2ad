package flag

import (
	// Stdlib
	"regexp"
	"strings"
)

// RegexpSetFlag collects unique regular expressions,
// so the flag can be specified multiple times.
type RegexpSetFlag struct {
	Values []*regexp.Regexp
}

func NewRegexpSetFlag() *RegexpSetFlag {
	return &RegexpSetFlag{make([]*regexp.Regexp, 0)}
}

func (set *RegexpSetFlag) String() string {
	if set == nil {
		return ""
	}
	return strings.Join(set.Patterns(), ",")
}

func (set *RegexpSetFlag) Set(value string) error {
	for _, existing := range set.Values {
		if existing.String() == value {
			return nil
		}
	}
	re, err := regexp.Compile(value)
	if err != nil {
		return err
	}
	set.Values = append(set.Values, re)
	return nil
}

// Patterns returns the source text of the expressions collected.
func (set *RegexpSetFlag) Patterns() []string {
	patterns := make([]string, 0, len(set.Values))
	for _, re := range set.Values {
		patterns = append(patterns, re.String())
	}
	return patterns
}
